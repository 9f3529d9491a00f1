package submission

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractYAML []byte

var (
	contractOnce sync.Once
	contractDoc  *openapi3.Schema
	contractErr  error
)

func loadContract(ctx context.Context) (*openapi3.Schema, error) {
	contractOnce.Do(func() {
		loader := &openapi3.Loader{Context: ctx}
		doc, err := loader.LoadFromData(contractYAML)
		if err != nil {
			contractErr = fmt.Errorf("submission: load contract: %w", err)
			return
		}
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			contractErr = fmt.Errorf("submission: validate contract document: %w", err)
			return
		}
		ref, ok := doc.Components.Schemas["AccountsSubmission"]
		if !ok || ref.Value == nil {
			contractErr = fmt.Errorf("submission: contract document missing AccountsSubmission schema")
			return
		}
		contractDoc = ref.Value
	})
	return contractDoc, contractErr
}

// ValidateWire checks serialized payload bytes against the published
// submission contract. Use it before handing the payload to the host.
func ValidateWire(ctx context.Context, data []byte) error {
	sch, err := loadContract(ctx)
	if err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("submission: decode payload for contract check: %w", err)
	}
	if err := sch.VisitJSON(value); err != nil {
		return fmt.Errorf("submission: payload violates contract: %w", err)
	}
	return nil
}
