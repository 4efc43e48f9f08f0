package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
	"statementAnalyzer/internal/ports"
)

const (
	// DefaultTrendDegree is the polynomial degree used for the rolling PnL trend line.
	DefaultTrendDegree = 3
	// DefaultHorizonDays is how far past the last close date the trend is projected.
	DefaultHorizonDays = 30

	pivotEpsilon = 1e-12
)

// PolynomialModel is an ordinary least squares polynomial fit.
//
// x is mapped onto [-1, 1] before the normal equations are built; the fitted curve is the same
// as for raw x.
type PolynomialModel struct {
	Degree int

	coeffs []float64 // in the scaled variable, lowest power first
	center float64
	scale  float64
}

// NewPolynomialModel creates an unfitted model of the given degree.
func NewPolynomialModel(degree int) *PolynomialModel {
	return &PolynomialModel{Degree: degree}
}

// Fit estimates the coefficients. When there are fewer distinct x values than Degree+1 the
// degree is lowered so the system stays determined.
func (m *PolynomialModel) Fit(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values for %d y values", ports.ErrInvalidRequest, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return ports.ErrInsufficientData
	}
	if m.Degree < 0 {
		return fmt.Errorf("%w: negative degree %d", ports.ErrInvalidRequest, m.Degree)
	}

	lo, hi := xs[0], xs[0]
	distinct := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		distinct[x] = struct{}{}
	}
	degree := m.Degree
	if degree > len(distinct)-1 {
		degree = len(distinct) - 1
	}

	m.center = (lo + hi) / 2
	m.scale = (hi - lo) / 2
	if m.scale == 0 {
		m.scale = 1
	}

	size := degree + 1
	a := make([][]float64, size)
	for i := range a {
		a[i] = make([]float64, size+1) // augmented with the right-hand side
	}
	powers := make([]float64, 2*degree+1)
	for k, x := range xs {
		u := (x - m.center) / m.scale
		p := 1.0
		for i := range powers {
			powers[i] = p
			p *= u
		}
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				a[i][j] += powers[i+j]
			}
			a[i][size] += ys[k] * powers[i]
		}
	}

	coeffs, err := solve(a)
	if err != nil {
		return err
	}
	m.coeffs = coeffs
	return nil
}

// Evaluate returns the fitted polynomial at x using Horner's scheme.
func (m *PolynomialModel) Evaluate(x float64) float64 {
	u := (x - m.center) / m.scale
	v := 0.0
	for i := len(m.coeffs) - 1; i >= 0; i-- {
		v = v*u + m.coeffs[i]
	}
	return v
}

// solve runs Gaussian elimination with partial pivoting on an augmented n x (n+1) matrix.
func solve(a [][]float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < pivotEpsilon {
			return nil, ports.ErrSingularSystem
		}
		a[col], a[pivot] = a[pivot], a[col]

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c <= n; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := a[r][n]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}

// TrendPoint is one day of the projected trend line.
type TrendPoint struct {
	Date  time.Time
	Value float64
}

// Projection is the fitted trend evaluated daily from the first close date through the horizon.
type Projection struct {
	Points        []TrendPoint
	ForecastDate  time.Time
	ForecastValue decimal.Decimal // Last projected value, rounded to 2 decimals
}

// ProjectTrend fits model to the daily rolling PnL against the day ordinal of each date and
// evaluates it for every day up to horizonDays past the last date, both ends inclusive.
// It returns nil for an empty series.
func ProjectTrend(daily []domain.DailyPnL, model ports.TrendModel, horizonDays int) (*Projection, error) {
	if len(daily) == 0 {
		return nil, nil
	}
	if horizonDays < 0 {
		return nil, fmt.Errorf("%w: negative horizon %d", ports.ErrInvalidRequest, horizonDays)
	}

	xs := make([]float64, len(daily))
	ys := make([]float64, len(daily))
	for i, d := range daily {
		xs[i] = float64(domain.Ordinal(d.Date))
		ys[i] = d.RollingPnL.InexactFloat64()
	}
	if err := model.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("failed to fit trend model: %w", err)
	}

	first := daily[0].Date
	span := domain.DaysBetween(first, daily[len(daily)-1].Date) + horizonDays
	proj := &Projection{Points: make([]TrendPoint, 0, span+1)}
	for i := 0; i <= span; i++ {
		date := first.AddDate(0, 0, i)
		proj.Points = append(proj.Points, TrendPoint{
			Date:  date,
			Value: model.Evaluate(float64(domain.Ordinal(date))),
		})
	}

	last := proj.Points[len(proj.Points)-1]
	proj.ForecastDate = last.Date
	proj.ForecastValue = decimal.NewFromFloat(last.Value).Round(2)
	return proj, nil
}
