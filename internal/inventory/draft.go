// Package inventory stages pharmacy availability toggles on the client until
// the pharmacist commits them.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"medisync-api/internal/model"
)

var ErrUnknownMedicine = errors.New("medicine not in the current list")

type Edit struct {
	ID           int64
	Availability bool
}

// API is the server side of a commit.
type API interface {
	UpdateAvailability(ctx context.Context, edits []Edit) ([]int64, error)
	PharmacyMedicines(ctx context.Context) ([]model.Medicine, error)
}

// Draft overlays staged edits on the last fetched list. The fetched list is
// never mutated.
type Draft struct {
	fetched []model.Medicine
	index   map[int64]int
	staged  map[int64]bool
}

func NewDraft(fetched []model.Medicine) *Draft {
	d := &Draft{}
	d.reset(fetched)
	return d
}

func (d *Draft) reset(fetched []model.Medicine) {
	d.fetched = append([]model.Medicine(nil), fetched...)
	d.index = make(map[int64]int, len(fetched))
	for i, m := range d.fetched {
		d.index[m.ID] = i
	}
	d.staged = map[int64]bool{}
}

// Stage records the desired availability for id.
func (d *Draft) Stage(id int64, available bool) error {
	if _, ok := d.index[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMedicine, id)
	}
	d.staged[id] = available
	return nil
}

// View returns the fetched list with staged values applied.
func (d *Draft) View() []model.Medicine {
	out := make([]model.Medicine, len(d.fetched))
	copy(out, d.fetched)
	for id, v := range d.staged {
		out[d.index[id]].Availability = v
	}
	return out
}

// Edits returns the staged edits in ascending id order.
func (d *Draft) Edits() []Edit {
	edits := make([]Edit, 0, len(d.staged))
	for id, v := range d.staged {
		edits = append(edits, Edit{ID: id, Availability: v})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].ID < edits[j].ID })
	return edits
}

func (d *Draft) Dirty() bool { return len(d.staged) > 0 }

// Discard drops every staged edit. Nothing is sent to the server.
func (d *Draft) Discard() { d.staged = map[int64]bool{} }

// Commit sends the staged edits, clears them and re-fetches the list. When the
// server stops on a failed edit the list is still re-fetched, and staged edits
// that neither were reported applied nor match the fresh value stay staged.
func (d *Draft) Commit(ctx context.Context, api API) ([]int64, error) {
	edits := d.Edits()
	if len(edits) == 0 {
		return nil, nil
	}

	updated, sendErr := api.UpdateAvailability(ctx, edits)
	fresh, err := api.PharmacyMedicines(ctx)
	if err != nil {
		if sendErr != nil {
			return updated, sendErr
		}
		d.Discard()
		return updated, fmt.Errorf("re-fetch inventory: %w", err)
	}

	pending := d.staged
	d.reset(fresh)
	if sendErr == nil {
		return updated, nil
	}
	done := make(map[int64]bool, len(updated))
	for _, id := range updated {
		done[id] = true
	}
	for id, v := range pending {
		if done[id] {
			continue
		}
		if i, ok := d.index[id]; ok && d.fetched[i].Availability != v {
			d.staged[id] = v
		}
	}
	return updated, sendErr
}
