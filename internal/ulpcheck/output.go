package ulpcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kdt3rd/pal/internal/ulp"
)

// Exit codes for ulpcheck commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a sweep exceeded its bound
	ExitCommandError = 2 // bad flags, unreadable config, unknown function
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode returns the exit code for err: 0 for nil, the code of an
// ExitError in its chain, or ExitCommandError otherwise (cobra reports
// flag errors as plain errors).
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Reporter writes listings and results as text or JSON.
type Reporter struct {
	Format string
	W      io.Writer
	p      *message.Printer
}

// NewReporter returns a Reporter that groups digits the English way.
func NewReporter(format string, w io.Writer) *Reporter {
	return &Reporter{Format: format, W: w, p: message.NewPrinter(language.English)}
}

func (r *Reporter) json(v any) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode json")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatFloat32(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

func (r *Reporter) bound(ulps uint64, abs float64) string {
	if ulps == 0 && abs > 0 {
		return "abs " + formatFloat(abs)
	}
	return r.p.Sprintf("%d ulp", ulps)
}

func (r *Reporter) maxULP(u uint64) string {
	if u == ulp.Inf {
		return "inf"
	}
	return r.p.Sprintf("%d", u)
}

type funcInfo struct {
	Name     string  `json:"name"`
	Tier     string  `json:"tier"`
	Min      float32 `json:"min"`
	Max      float32 `json:"max"`
	Bound    uint64  `json:"bound_ulp,omitempty"`
	AbsBound float64 `json:"bound_abs,omitempty"`
}

// List writes one line per function.
func (r *Reporter) List(funcs []*Func) error {
	if r.Format == "json" {
		infos := make([]funcInfo, len(funcs))
		for i, f := range funcs {
			infos[i] = funcInfo{f.Name, f.Tier.String(), f.Min, f.Max, f.Bound, f.AbsBound}
		}
		return r.json(infos)
	}
	fmt.Fprintf(r.W, "%-12s %-8s %-20s %s\n", "NAME", "TIER", "DOMAIN", "BOUND")
	for _, f := range funcs {
		domain := "[" + formatFloat32(f.Min) + ", " + formatFloat32(f.Max) + "]"
		fmt.Fprintf(r.W, "%-12s %-8s %-20s %s\n", f.Name, f.Tier, domain, r.bound(f.Bound, f.AbsBound))
	}
	return nil
}

// Results writes the outcome of each sweep.
func (r *Reporter) Results(results []*Result) error {
	if r.Format == "json" {
		return r.json(results)
	}
	for _, res := range results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		f, _ := Lookup(res.Func)
		abs := 0.0
		if f != nil {
			abs = f.AbsBound
		}
		fmt.Fprintf(r.W, "%s %s (%s) over [%s, %s]: %s inputs\n",
			status, res.Func, res.Tier, formatFloat32(res.Min), formatFloat32(res.Max),
			r.p.Sprintf("%d", res.Count))
		fmt.Fprintf(r.W, "  max %s ulp at x=%s, mean %.3f ulp, max abs %.3g, %s NaN, bound %s\n",
			r.maxULP(res.MaxULP), formatFloat(res.Worst), res.MeanULP, res.MaxAbs,
			r.p.Sprintf("%d", res.NaNs), r.bound(res.Bound, abs))
	}
	return nil
}
