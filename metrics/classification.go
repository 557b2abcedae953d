package metrics

import (
	"sort"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

// Accuracy は正解率（予測ラベルが正解と一致した割合）を計算する
func Accuracy(yTrue, yPred []string) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewEmptyDatasetError("Accuracy")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix は混同行列。Counts[i][j] は正解が Labels[i] で予測が Labels[j] の件数。
type ConfusionMatrix struct {
	Labels []string
	Counts [][]int
}

// NewConfusionMatrix は混同行列を作成する。ラベルは辞書順に並ぶ。
func NewConfusionMatrix(yTrue, yPred []string) (*ConfusionMatrix, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewEmptyDatasetError("ConfusionMatrix")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, len(yPred), 0)
	}

	index := make(map[string]int)
	for _, l := range yTrue {
		index[l] = 0
	}
	for _, l := range yPred {
		index[l] = 0
	}
	labels := make([]string, 0, len(index))
	for l := range index {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for i, l := range labels {
		index[l] = i
	}

	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	for i := range yTrue {
		counts[index[yTrue[i]]][index[yPred[i]]]++
	}
	return &ConfusionMatrix{Labels: labels, Counts: counts}, nil
}

// Count は正解 trueLabel・予測 predLabel の件数を返す。未知のラベルは 0。
func (cm *ConfusionMatrix) Count(trueLabel, predLabel string) int {
	i, j := -1, -1
	for k, l := range cm.Labels {
		if l == trueLabel {
			i = k
		}
		if l == predLabel {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0
	}
	return cm.Counts[i][j]
}
