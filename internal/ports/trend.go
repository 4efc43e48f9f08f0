package ports

// TrendModel fits a curve to (x, y) observations and evaluates it at arbitrary x.
// Implementations must be deterministic for identical input.
type TrendModel interface {
	// Fit estimates the model parameters. It may be called again to refit.
	Fit(xs, ys []float64) error
	// Evaluate returns the fitted value at x. Only valid after a successful Fit.
	Evaluate(x float64) float64
}
