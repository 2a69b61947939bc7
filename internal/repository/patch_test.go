package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

type recordedExec struct {
	sql  string
	args []any
}

// recordingDB captures Exec calls and fails everything else.
type recordingDB struct {
	execs []recordedExec
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, recordedExec{sql: sql, args: args})
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (d *recordingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query not expected")
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{err: errors.New("query row not expected")}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestOwnedUpdateScopesByIDAndUser(t *testing.T) {
	var p patch
	setIfPresent(&p, "total_sleep", intPtr(420))
	setIfPresent[int](&p, "deep_sleep", nil)
	setIfPresent(&p, "notes", strPtr("slept well"))

	query, args := p.ownedUpdate("sleep_entries", 7, 42)

	want := "UPDATE sleep_entries SET total_sleep = $1, notes = $2, updated_at = NOW() WHERE id = $3 AND user_id = $4"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[0] != 420 || args[1] != "slept well" || args[2] != int64(7) || args[3] != int64(42) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestGlobalUpdateScopesByIDOnly(t *testing.T) {
	var p patch
	p.set("status", "closed")

	query, args := p.globalUpdate("inquiries", 3)
	if query != "UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[1] != int64(3) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestSetJSONIfPresentPassesBytes(t *testing.T) {
	var p patch
	setJSONIfPresent(&p, "features", nil)
	if !p.empty() {
		t.Fatalf("nil payload should not be written")
	}
	setJSONIfPresent(&p, "features", []byte(`["a"]`))
	if _, ok := p.args[0].([]byte); !ok {
		t.Fatalf("expected []byte argument, got %T", p.args[0])
	}
}

func TestEmptyPatchIsNoop(t *testing.T) {
	db := &recordingDB{}
	repo := NewSleepRepository(db)

	if err := repo.Update(context.Background(), 1, 1, SleepEntryPatch{}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(db.execs) != 0 {
		t.Fatalf("expected no statement for empty patch, got %d", len(db.execs))
	}
}

func TestMutationsAreOwnerScoped(t *testing.T) {
	db := &recordingDB{}
	ctx := context.Background()

	if err := NewBodyRepository(db).Update(ctx, 5, 9, BodyEntryPatch{Notes: strPtr("ok")}); err != nil {
		t.Fatalf("body Update: %v", err)
	}
	if err := NewWaterRepository(db).Delete(ctx, 5, 9); err != nil {
		t.Fatalf("water Delete: %v", err)
	}
	if err := NewGoalRepository(db).Complete(ctx, 5, 9); err != nil {
		t.Fatalf("goal Complete: %v", err)
	}

	if len(db.execs) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(db.execs))
	}
	for _, exec := range db.execs {
		if !strings.Contains(exec.sql, "user_id = $") {
			t.Fatalf("statement is not owner scoped: %s", exec.sql)
		}
		n := len(exec.args)
		if exec.args[n-2] != int64(5) || exec.args[n-1] != int64(9) {
			t.Fatalf("expected trailing id and user args, got %#v", exec.args)
		}
	}
	if !strings.Contains(db.execs[2].sql, "completed_at = NOW()") {
		t.Fatalf("complete should stamp completed_at: %s", db.execs[2].sql)
	}
}

func TestBlogUpdateStampsPublishedAtOnTransition(t *testing.T) {
	db := &recordingDB{}
	published := true

	err := NewBlogRepository(db).Update(context.Background(), 4, BlogPostPatch{
		Title:     strPtr("Week 3"),
		Published: &published,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	sql := db.execs[0].sql
	if !strings.Contains(sql, "published = $2") {
		t.Fatalf("expected published to be the second arg: %s", sql)
	}
	if !strings.Contains(sql, "CASE WHEN $2::boolean AND NOT blog_posts.published THEN NOW()") {
		t.Fatalf("expected transition guard on published_at: %s", sql)
	}
	if !strings.HasSuffix(sql, "WHERE id = $3") {
		t.Fatalf("expected id as last placeholder: %s", sql)
	}
}

func TestUnavailableStoreIsReported(t *testing.T) {
	ctx := context.Background()
	date, _ := models.ParseDate("2026-01-10")

	if _, err := NewSleepRepository(nil).Create(ctx, 1, SleepEntryInput{EntryDate: date}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Create: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := NewWaterRepository(nil).DailyTotal(ctx, 1, date); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("DailyTotal: expected ErrStoreUnavailable, got %v", err)
	}
	if err := NewSaunaRepository(nil).Update(ctx, 1, 1, SaunaEntryPatch{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("empty Update on missing store: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := NewBlogRepository(nil).List(ctx, true); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("List: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestUserScopeOnlyAppliesCompleteRanges(t *testing.T) {
	start, _ := models.ParseDate("2026-01-01")
	end, _ := models.ParseDate("2026-01-31")

	where, args := userScope(3, DateRange{Start: &start})
	if where != "user_id = $1" || len(args) != 1 {
		t.Fatalf("half open range should be ignored, got %q %v", where, args)
	}

	where, args = userScope(3, DateRange{Start: &start, End: &end})
	if where != "user_id = $1 AND entry_date BETWEEN $2 AND $3" {
		t.Fatalf("unexpected where: %s", where)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
}
