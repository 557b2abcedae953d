package model

// LabelPredictor は1つのクエリベクトルに対してラベルを予測するモデルのインターフェース
type LabelPredictor interface {
	// Predict は入力ベクトルに最も近いラベルを返す
	Predict(x []float64) (string, error)
}

// Classifier はラベル分類器のインターフェース
type Classifier interface {
	LabelPredictor

	// PredictBatch は複数のクエリを一括で予測する
	PredictBatch(X [][]float64) ([]string, error)

	// Score は正解ラベルに対する正解率を返す
	Score(X [][]float64, y []string) (float64, error)
}
