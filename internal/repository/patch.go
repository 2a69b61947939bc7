package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// patch collects the SET clause of a partial update. Only provided fields are written.
type patch struct {
	sets []string
	args []any
}

func (p *patch) set(column string, value any) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func (p *patch) setRaw(expr string) {
	p.sets = append(p.sets, expr)
}

func (p *patch) empty() bool {
	return len(p.sets) == 0
}

func setIfPresent[T any](p *patch, column string, value *T) {
	if value != nil {
		p.set(column, *value)
	}
}

func setJSONIfPresent(p *patch, column string, value json.RawMessage) {
	if value != nil {
		p.set(column, []byte(value))
	}
}

// ownedUpdate builds UPDATE ... WHERE id = $n AND user_id = $m.
func (p *patch) ownedUpdate(table string, id, userID int64) (string, []any) {
	args := append(append([]any{}, p.args...), id, userID)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d AND user_id = $%d",
		table,
		strings.Join(p.sets, ", "),
		len(p.args)+1,
		len(p.args)+2,
	)
	return query, args
}

// globalUpdate builds UPDATE ... WHERE id = $n for rows without an owner.
func (p *patch) globalUpdate(table string, id int64) (string, []any) {
	args := append(append([]any{}, p.args...), id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		table,
		strings.Join(p.sets, ", "),
		len(p.args)+1,
	)
	return query, args
}

// applyOwned executes an owner-scoped patch. Zero matched rows is not an error.
func applyOwned(ctx context.Context, s store, table string, id, userID int64, p *patch) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if p.empty() {
		return nil
	}
	query, args := p.ownedUpdate(table, id, userID)
	_, err = db.Exec(ctx, query, args...)
	return err
}

func applyGlobal(ctx context.Context, s store, table string, id int64, p *patch) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if p.empty() {
		return nil
	}
	query, args := p.globalUpdate(table, id)
	_, err = db.Exec(ctx, query, args...)
	return err
}
