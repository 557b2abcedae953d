// Package stats は行優先の行列に対する列ごとの統計量と標準化を提供する。
//
// 典型的な使い方:
//
//	means, _ := stats.Mean(X)
//	stds, _ := stats.Std(X, means)
//	_ = stats.Normalize(X, means, stds) // X を書き換える
//	q, _ := stats.NormalizeVector(query, means, stds)
//
// means と stds は後続のクエリにも同じ変換を掛けるため呼び出し側で保持すること。
package stats

import (
	"math"

	"github.com/viterin/vek"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

// Columns は行列の列数を返す。
// 行が1つもない、または先頭行が空の場合は ErrEmptyDataset、
// 行の長さが揃っていない場合は DimensionError を返す。
func Columns(op string, matrix [][]float64) (int, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return 0, errors.NewEmptyDatasetError(op)
	}
	c := len(matrix[0])
	for _, row := range matrix[1:] {
		if len(row) != c {
			return 0, errors.NewDimensionError(op, c, len(row), 1)
		}
	}
	return c, nil
}

// Mean は各列の算術平均を計算する
func Mean(matrix [][]float64) ([]float64, error) {
	c, err := Columns("Mean", matrix)
	if err != nil {
		return nil, err
	}

	sums := make([]float64, c)
	for _, row := range matrix {
		vek.Add_Inplace(sums, row)
	}
	vek.DivNumber_Inplace(sums, float64(len(matrix)))
	return sums, nil
}

// Std は各列の母標準偏差（R で割る。R-1 ではない）を計算する。
// means は Mean の結果を渡すこと。
func Std(matrix [][]float64, means []float64) ([]float64, error) {
	c, err := Columns("Std", matrix)
	if err != nil {
		return nil, err
	}
	if len(means) != c {
		return nil, errors.NewDimensionError("Std", c, len(means), 1)
	}

	// Σ(x - mean)²
	// vek は出力先と入力の重なりを許さない
	sumSquares := make([]float64, c)
	diff := make([]float64, c)
	sq := make([]float64, c)
	for _, row := range matrix {
		vek.Sub_Into(diff, row, means)
		vek.Mul_Into(sq, diff, diff)
		vek.Add_Inplace(sumSquares, sq)
	}
	vek.DivNumber_Inplace(sumSquares, float64(len(matrix)))
	for j, v := range sumSquares {
		sumSquares[j] = math.Sqrt(v)
	}
	return sumSquares, nil
}

// Normalize は行列を列ごとに (x - means[j]) / stds[j] で標準化する。
// 行列はその場で書き換えられる。
//
// stds に 0 が含まれる場合は ZeroVarianceError、負の値は ValidationError、
// means / stds に NaN や Inf が含まれる場合は NumericalInstabilityError を返す。
// エラー時には行列は一切変更されない。
func Normalize(matrix [][]float64, means, stds []float64) error {
	c, err := Columns("Normalize", matrix)
	if err != nil {
		return err
	}
	if err := checkParams("Normalize", c, means, stds); err != nil {
		return err
	}

	for _, row := range matrix {
		vek.Sub_Inplace(row, means)
		vek.Div_Inplace(row, stds)
	}
	return nil
}

// NormalizeVector は1つのクエリベクトルに Normalize と同じ変換を掛けた新しいスライスを返す。
// x は変更されない。
func NormalizeVector(x, means, stds []float64) ([]float64, error) {
	if err := checkParams("NormalizeVector", len(x), means, stds); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	vek.Sub_Into(out, x, means)
	vek.Div_Inplace(out, stds)
	return out, nil
}

func checkParams(op string, cols int, means, stds []float64) error {
	if len(means) != cols {
		return errors.NewDimensionError(op, cols, len(means), 1)
	}
	if len(stds) != cols {
		return errors.NewDimensionError(op, cols, len(stds), 1)
	}
	if err := errors.CheckNumericalStability(op, means); err != nil {
		return err
	}
	if err := errors.CheckNumericalStability(op, stds); err != nil {
		return err
	}
	for j, s := range stds {
		if s == 0 {
			return errors.NewZeroVarianceError(op, j)
		}
		if s < 0 {
			return errors.NewValidationError("stds", "standard deviation must be positive", s)
		}
	}
	return nil
}
