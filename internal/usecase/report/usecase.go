// Package report builds the per-criterion CSV export reviewed by admins.
package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCriterion "greentracker-backend/internal/domain/criterion"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/evidence"
)

var header = []string{
	"indicator_index", "subindex", "criterion", "category",
	"activity_id", "activity_name", "unit_id", "unit_name", "activity_uploaded",
	"evidence_number", "evidence_type", "link", "description", "evidence_uploaded",
	"link_to_related_resource", "feedback",
}

// Report is fully built before anything is written, so a failed query never yields a partial file.
type Report struct {
	Filename string
	rows     [][]string
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// ParseCriteria reads "<indicator>.<subindex>", e.g. "1.3".
func ParseCriteria(s string) (domainCriterion.Key, error) {
	idx, sub, ok := strings.Cut(s, ".")
	if !ok {
		return domainCriterion.Key{}, ErrInvalidCriteria
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 1 {
		return domainCriterion.Key{}, ErrInvalidCriteria
	}
	j, err := strconv.Atoi(sub)
	if err != nil || j < 1 {
		return domainCriterion.Key{}, ErrInvalidCriteria
	}
	return domainCriterion.Key{IndicatorIndex: i, Subindex: j}, nil
}

// Build collects every activity filed under the criterion's category with its evidence and feedback.
// A criterion without a category yields a report with only the header.
func (u *Usecase) Build(ctx context.Context, key domainCriterion.Key) (*Report, error) {
	out := &Report{Filename: fmt.Sprintf("criteria-%d.%d.csv", key.IndicatorIndex, key.Subindex)}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Criteria.FindOne(ctx, key)
		if errors.Is(err, domainCriterion.ErrNotFound) {
			return ErrCriterionNotFound
		}
		if err != nil {
			return err
		}
		if c.CategoryName == nil {
			return nil
		}
		acts, err := r.Activities.FindAll(ctx, domainActivity.Filter{
			IndicatorIndex: &key.IndicatorIndex,
			CategoryName:   *c.CategoryName,
		})
		if err != nil {
			return err
		}
		units := map[string]string{}
		for _, a := range acts {
			name, err := unitName(ctx, r, units, a.UnitID)
			if err != nil {
				return err
			}
			ev, err := evidence.ListWith(ctx, r, a.ID)
			if err != nil {
				return err
			}
			base := []string{
				strconv.Itoa(c.IndicatorIndex), strconv.Itoa(c.Subindex), c.EnglishName, *c.CategoryName,
				a.ID, a.Name, a.UnitID, name, formatTime(a.UploadTimestamp),
			}
			if len(ev) == 0 {
				out.rows = append(out.rows, append(base, "", "", "", "", "", "", ""))
				continue
			}
			for _, e := range ev {
				out.rows = append(out.rows, append(append([]string{}, base...), evidenceColumns(e)...))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Len is the number of data rows.
func (rep *Report) Len() int { return len(rep.rows) }

func (rep *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rep.rows {
		safe := make([]string, len(row))
		for i, v := range row {
			safe[i] = cell(v)
		}
		if err := cw.Write(safe); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// cell quotes values a spreadsheet would evaluate as a formula.
func cell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}

func evidenceColumns(e evidence.DTO) []string {
	related := ""
	if e.LinkToRelatedResource != nil {
		related = *e.LinkToRelatedResource
	}
	fb := make([]string, 0, len(e.Feedback))
	for _, f := range e.Feedback {
		fb = append(fb, string(f.Feedback))
	}
	return []string{
		strconv.Itoa(e.EvidenceNumber), string(e.Type), e.Link, e.Description,
		formatTime(e.UploadTimestamp), related, strings.Join(fb, ";"),
	}
}

func unitName(ctx context.Context, r uow.Repos, cache map[string]string, unitID string) (string, error) {
	if name, ok := cache[unitID]; ok {
		return name, nil
	}
	un, err := r.Units.FindOne(ctx, unitID)
	switch {
	case errors.Is(err, domainUser.ErrNotFound):
		cache[unitID] = ""
	case err != nil:
		return "", err
	default:
		cache[unitID] = un.Name
	}
	return cache[unitID], nil
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }
