// Package log defines standard attribute keys for rbfols operations.
//
// The keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples", "rbf.sigma") so that structured logs emitted while
// growing and fitting a network can be filtered consistently.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "RBFNetwork".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "new", "add_factor", "fit", "predict", "mse", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey is the number of observations (rows of X).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns of X).
	FeaturesKey = "data.features"
)

// Network state
const (
	// SupportsKey is the number of selected supports.
	SupportsKey = "rbf.supports"

	// SelectedIndexKey is the observation index chosen by a selection step.
	SelectedIndexKey = "rbf.selected_index"

	// ScoreKey is the error-reduction score of the chosen candidate.
	ScoreKey = "rbf.score"

	// SigmaKey is the kernel scale in effect.
	SigmaKey = "rbf.sigma"

	// RankKey is the numerical rank of the design matrix.
	RankKey = "rbf.rank"

	// CacheHitKey reports whether a fit was served from the cache.
	CacheHitKey = "rbf.cache_hit"
)

// Metrics
const (
	// MSEKey records the mean squared error on the training data.
	MSEKey = "metrics.mse"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// WarningKey carries a structured warning object.
	WarningKey = "warning"
)

// Standard attribute values.
const (
	OperationNew       = "new"
	OperationAddFactor = "add_factor"
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationMSE       = "mse"
	OperationScore     = "score"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorDegenerateScale   = "DEGENERATE_SCALE"
	ErrorNoCandidates      = "NO_CANDIDATES"
)
