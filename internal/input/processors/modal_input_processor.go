package processors

import (
	"fmt"

	"github.com/ja-he/memeplan/internal/input"
)

type namedOverlay struct {
	name      string
	processor input.SimpleInputProcessor
}

// ModalInputProcessor is an input processor that can take any number of named
// input overlays over its base input processor.
// It delegates all processing to the topmost one.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base input.SimpleInputProcessor

	modalOverlays []namedOverlay
}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{
		base:          base,
		modalOverlays: make([]namedOverlay, 0),
	}
}

// CapturesInput returns whether the topmost processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.getApplicableProcessor().CapturesInput()
}

// ProcessInput delegates input processing to the topmost overlay or, without
// overlays, the base processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.getApplicableProcessor().ProcessInput(key)
}

// ApplyModalOverlay applies a named overlay to this processor.
func (p *ModalInputProcessor) ApplyModalOverlay(name string, overlay input.SimpleInputProcessor) (index uint) {
	p.modalOverlays = append(p.modalOverlays, namedOverlay{name: name, processor: overlay})
	return uint(len(p.modalOverlays) - 1)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.modalOverlays) < 1 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.modalOverlays = p.modalOverlays[:len(p.modalOverlays)-1]
	return nil
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.modalOverlays)) {
		p.modalOverlays = p.modalOverlays[:index]
	}
}

// Mode returns the name of the topmost overlay, or "" without overlays.
func (p *ModalInputProcessor) Mode() string {
	if len(p.modalOverlays) == 0 {
		return ""
	}
	return p.modalOverlays[len(p.modalOverlays)-1].name
}

func (p *ModalInputProcessor) getApplicableProcessor() input.SimpleInputProcessor {
	if len(p.modalOverlays) > 0 {
		return p.modalOverlays[len(p.modalOverlays)-1].processor
	}
	return p.base
}

// GetHelp returns the input help of the topmost processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.getApplicableProcessor().GetHelp()
}

var _ input.ModalInputProcessor = &ModalInputProcessor{}
