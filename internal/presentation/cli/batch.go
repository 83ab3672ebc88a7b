package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/internal/domain/service"
)

// batchDocument is the --file output.
type batchDocument struct {
	Results []any `json:"results"`
	Total   int   `json:"total"`
	Valid   int   `json:"valid"`
	Invalid int   `json:"invalid"`
}

func (a *app) runBatch(ctx context.Context, validator *service.RoutingNumberValidator) error {
	numbers, err := a.readCandidates()
	if err != nil {
		return err
	}

	resp, err := usecase.NewValidateBatchUseCase(validator, nil, math.MaxInt).
		Execute(ctx, dto.ValidateBatchRequest{RoutingNumbers: numbers})
	if err != nil {
		return fmt.Errorf("%s: %w", a.opts.file, err)
	}
	a.logger.Debug("validated batch", "total", resp.Total, "invalid", resp.Invalid)

	doc := batchDocument{
		Results: make([]any, 0, len(resp.Results)),
		Total:   resp.Total,
		Valid:   resp.Valid,
		Invalid: resp.Invalid,
	}
	for _, r := range resp.Results {
		doc.Results = append(doc.Results, a.present(r))
	}

	a.writeJSON(doc)
	if resp.AllValid() {
		a.exitCode = exitValid
	}
	return nil
}

// readCandidates returns the non-blank lines of the --file input.
func (a *app) readCandidates() ([]string, error) {
	var r io.Reader = a.stdin
	if a.opts.file != "-" {
		f, err := os.Open(a.opts.file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", a.opts.file, err)
		}
		defer f.Close()
		r = f
	}

	var numbers []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", a.opts.file, err)
	}
	return numbers, nil
}
