package core

// AnnotationType identifies the highlight kind applied to a byte range.
type AnnotationType int

const (
	// AnnotationNone marks unstyled text. It never appears in an Annotation;
	// it is the resolved style of spans no annotation covers.
	AnnotationNone AnnotationType = iota
	AnnotationMatch
	AnnotationSelectedMatch
	AnnotationSelection
)

func (t AnnotationType) String() string {
	switch t {
	case AnnotationMatch:
		return "match"
	case AnnotationSelectedMatch:
		return "selected-match"
	case AnnotationSelection:
		return "selection"
	default:
		return "none"
	}
}

// precedence orders overlapping annotations: the current search match always
// wins visually over a selection, which wins over a plain match.
func (t AnnotationType) precedence() int {
	switch t {
	case AnnotationSelectedMatch:
		return 3
	case AnnotationSelection:
		return 2
	case AnnotationMatch:
		return 1
	default:
		return 0
	}
}

// Annotation tags a half-open byte range [Start, End) of a line with a
// highlight kind. Annotations are produced per render pass by the search
// engine and the selection tracker and are not retained across renders.
type Annotation struct {
	Type  AnnotationType
	Start int
	End   int
}
