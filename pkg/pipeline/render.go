package pipeline

import (
	"fmt"

	"github.com/neuradeck/slidekit/pkg/render/wireframe"
)

// RenderLayout generates output artifacts in the requested formats.
func RenderLayout(l Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = wireframe.RenderSVG(opts.Canvas, wireframeSlides(l), wireframeOptions(opts)...)
		case FormatJSON:
			data, err = MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// wireframeSlides converts composed slides into wireframe pages.
func wireframeSlides(l Layout) []wireframe.Slide {
	pages := make([]wireframe.Slide, len(l.Slides))
	for i, s := range l.Slides {
		pages[i] = wireframe.Slide{
			Label:      fmt.Sprintf("slide %d (%s)", s.Index, s.Archetype),
			Placements: s.Placements,
		}
	}
	return pages
}

// wireframeOptions maps pipeline options onto renderer options.
func wireframeOptions(opts Options) []wireframe.Option {
	wf := []wireframe.Option{wireframe.WithScale(opts.Scale)}
	if opts.GridOverlay {
		wf = append(wf, wireframe.WithGridOverlay(opts.Grid))
	}
	if opts.Annotations {
		wf = append(wf, wireframe.WithAnnotations())
	}
	return wf
}
