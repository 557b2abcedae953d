// Package log defines standard attribute keys for nearest-neighbor operations.
//
// Keys follow a hierarchical naming convention ("model.name",
// "data.samples") so log pipelines can filter on them.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the component type.
	// Examples: "Dataset", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "neighbors", "preprocessing", "stats"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of columns (features).
	FeaturesKey = "data.features"

	// LabelsKey indicates the number of distinct labels in a dataset.
	LabelsKey = "data.labels"
)

// Prediction Context
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"

	// DistanceKey records the distance to the winning neighbor.
	DistanceKey = "preds.distance"

	// NeighborIndexKey records the row index of the winning neighbor.
	NeighborIndexKey = "preds.neighbor_index"

	// AccuracyKey records accuracy for scoring operations.
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// FeatureIndexKey identifies the column involved in a warning or error.
	FeatureIndexKey = "error.feature"
)

// Standard attribute value constants.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationScore     = "score"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyDataset      = "EMPTY_DATASET"
	ErrorZeroVariance      = "ZERO_VARIANCE"
)
