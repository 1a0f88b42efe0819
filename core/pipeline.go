package core

import "regexp"

// normalizerFunc mirrors normalize.Normalizer without importing the
// normalize package, which itself needs to import core for Kind and
// Diagnostics; Pipeline is wired to its stage functions by the caller
// (see New) to keep the dependency one-directional.
type normalizerFunc func(text string, diag *Diagnostics) string

// Stage groups the ordered pass functions a Pipeline runs over a
// TrackedBuffer. Each field is a closure bound to the active Config by
// New, so Pipeline itself stays free of any dependency on config,
// structural, scan, or normalize.
type Stages struct {
	// Preprocess runs first: BOM/quote/dash unification, before any
	// structural or token scanning.
	Preprocess func(buf *TrackedBuffer)
	// StructuralFenced handles fenced code and diagram blocks.
	StructuralFenced func(buf *TrackedBuffer, diag *Diagnostics)
	// StructuralInline handles inline code spans.
	StructuralInline func(buf *TrackedBuffer, diag *Diagnostics)
	// ScanStructured, ScanWords, and ScanScalars run the three
	// kind-ordered token scan passes over the remaining flat text.
	ScanStructured func(buf *TrackedBuffer, diag *Diagnostics)
	ScanWords      func(buf *TrackedBuffer, diag *Diagnostics)
	ScanScalars    func(buf *TrackedBuffer, diag *Diagnostics)
	// Postprocess runs last, before the final character map is built.
	Postprocess func(buf *TrackedBuffer)
}

// Pipeline is the top-level owner of the fixed processing sequence:
// construct a TrackedBuffer, run the structural, scan, and postprocess
// stages over it in order, then derive the final text and character map
// from the buffer's substitution log.
//
// A *Pipeline holds no per-call text state and may be reused across
// calls. Every call updates the shared Diagnostics counters without
// locking, so concurrent calls on one Pipeline race on those counters.
type Pipeline struct {
	stages Stages
	diag   *Diagnostics
}

// NewPipeline constructs a Pipeline from its stage functions and a shared
// Diagnostics collector. Construction logic that depends on config,
// structural, scan, and normalize lives in the top-level New function;
// NewPipeline itself only wires stage closures together, keeping package
// core free of a dependency on any of them.
func NewPipeline(stages Stages, diag *Diagnostics) *Pipeline {
	return &Pipeline{stages: stages, diag: diag}
}

// Diagnostics returns the Pipeline's shared diagnostics collector.
func (p *Pipeline) Diagnostics() *Diagnostics {
	return p.diag
}

// Process runs the full pipeline and returns only the rewritten text.
func (p *Pipeline) Process(text string) string {
	out, _ := p.ProcessWithMap(text)
	return out
}

// ProcessWithMap runs the full pipeline and returns both the rewritten
// text and its character map back to the original input, following the
// fixed eight-step sequence.
func (p *Pipeline) ProcessWithMap(text string) (string, *CharMap) {
	buf := NewBuffer(text, p.diag)

	if p.stages.Preprocess != nil {
		p.stages.Preprocess(buf)
	}
	if p.stages.StructuralFenced != nil {
		p.stages.StructuralFenced(buf, p.diag)
	}
	if p.stages.StructuralInline != nil {
		p.stages.StructuralInline(buf, p.diag)
	}
	if p.stages.ScanStructured != nil {
		p.stages.ScanStructured(buf, p.diag)
	}
	if p.stages.ScanWords != nil {
		p.stages.ScanWords(buf, p.diag)
	}
	if p.stages.ScanScalars != nil {
		p.stages.ScanScalars(buf, p.diag)
	}
	if p.stages.Postprocess != nil {
		p.stages.Postprocess(buf)
	}

	return buf.BuildMapping()
}

// bomPattern matches a leading UTF-8 byte order mark.
var bomPattern = regexp.MustCompile(`^\x{FEFF}`)

// smartQuotePattern matches the curly quote variants unified to a
// straight double quote during preprocessing.
var smartQuotePattern = regexp.MustCompile(`[\x{201C}\x{201D}\x{00AB}\x{00BB}\x{201E}]`)

// smartApostrophePattern matches the curly single-quote variants unified
// to a straight apostrophe.
var smartApostrophePattern = regexp.MustCompile(`[\x{2018}\x{2019}]`)

// crlfPattern matches a Windows line ending, unified to a bare "\n".
var crlfPattern = regexp.MustCompile(`\r\n?`)

// dashPattern matches the en dash and em dash, unified to an ASCII hyphen.
var dashPattern = regexp.MustCompile(`[\x{2013}\x{2014}]`)

// Preprocess runs the tracked BOM-strip, quote/dash-unification,
// line-ending-unification pass that forms the pipeline's stage 0. It is
// exported so New can wire it into Stages.Preprocess without package core
// depending on config.
func Preprocess(buf *TrackedBuffer) {
	buf.SubRegex(bomPattern, func([]string) string { return "" })
	buf.SubRegex(crlfPattern, func([]string) string { return "\n" })
	buf.SubRegex(smartQuotePattern, func([]string) string { return "\"" })
	buf.SubRegex(smartApostrophePattern, func([]string) string { return "'" })
	buf.SubRegex(dashPattern, func([]string) string { return "-" })
}
