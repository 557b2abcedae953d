package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nearest/core/model"
	"github.com/YuminosukeSato/nearest/pkg/errors"
	"github.com/YuminosukeSato/nearest/pkg/log"
	"github.com/YuminosukeSato/nearest/stats"
)

var (
	_ model.Transformer       = (*StandardScaler)(nil)
	_ model.VectorTransformer = (*StandardScaler)(nil)
)

// StandardScaler はscikit-learn互換の標準化スケーラー
// データを平均0、標準偏差1に変換し、学習した統計量をクエリ変換のために保持する
type StandardScaler struct {
	model.BaseEstimator

	// Mean は各特徴量の平均値（WithMean が false なら 0）
	Mean []float64

	// Scale は各特徴量の母標準偏差（WithStd が false、または分散0なら 1）
	Scale []float64

	// NFeatures は特徴量の数
	NFeatures int

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	XScaled, err := scaler.FitTransform(X)
//	q, err := scaler.TransformVector(query)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データから平均と母標準偏差を計算する。
// 分散が0の特徴量はスケール1として扱い、ConstantFeatureWarning を発生させる。
func (s *StandardScaler) Fit(X mat.Matrix) error {
	rows := denseRows(X)
	means, err := stats.Mean(rows)
	if err != nil {
		return err
	}
	stds, err := stats.Std(rows, means)
	if err != nil {
		return err
	}

	c := len(means)
	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	if s.WithMean {
		copy(s.Mean, means)
	}
	for j := 0; j < c; j++ {
		s.Scale[j] = 1.0
		if !s.WithStd {
			continue
		}
		if stds[j] == 0 {
			errors.Warn(errors.NewConstantFeatureWarning("StandardScaler.Fit", j))
			continue
		}
		s.Scale[j] = stds[j]
	}

	s.SetFitted()
	log.GetLogger().Debug("StandardScaler fitted",
		log.ModelNameKey, "StandardScaler",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(rows),
		log.FeaturesKey, c,
	)
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化した新しい行列を返す
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	rows := denseRows(X)
	if err := stats.Normalize(rows, s.Mean, s.Scale); err != nil {
		return nil, err
	}
	log.GetLogger().Debug("StandardScaler transformed",
		log.ModelNameKey, "StandardScaler",
		log.OperationKey, log.OperationTransform,
		log.SamplesKey, r,
	)
	return fromRows(r, c, rows), nil
}

// TransformVector は1つのクエリベクトルを学習済みの統計量で標準化する
func (s *StandardScaler) TransformVector(x []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "TransformVector")
	}
	return stats.NormalizeVector(x, s.Mean, s.Scale)
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}
	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, v float64) float64 {
		return v*s.Scale[j] + s.Mean[j]
	}, X)
	return result, nil
}

// GetParams はスケーラーのパラメータを取得する
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"with_mean": s.WithMean,
		"with_std":  s.WithStd,
	}
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, s.NFeatures)
}

// denseRows は行列を行ごとのスライスにコピーする
func denseRows(X mat.Matrix) [][]float64 {
	r, _ := X.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}
	return rows
}

func fromRows(r, c int, rows [][]float64) *mat.Dense {
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}
