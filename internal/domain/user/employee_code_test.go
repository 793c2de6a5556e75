package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeFinder struct {
	codes []string // creation order
	err   error
}

func (f *fakeCodeFinder) LatestEmployeeCodeWithPrefix(_ context.Context, prefix string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for i := len(f.codes) - 1; i >= 0; i-- {
		if len(f.codes[i]) >= len(prefix) && f.codes[i][:len(prefix)] == prefix {
			return f.codes[i], nil
		}
	}
	return "", nil
}

func TestCompanyPrefix(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Acme Corp", "AC"},
		{"Odoo India Pvt", "OI"},
		{"Dayflow", "DA"},
		{"  acme   corp  ", "AC"},
		{"x", "X"},
		{"", "DA"},
		{"   ", "DA"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CompanyPrefix(c.input), "CompanyPrefix(%q)", c.input)
	}
}

func TestNamePrefix(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"John Doe", "JODO"},
		{"john middle doe", "JODO"},
		{"Max", "MAXX"},
		{"Alexander", "ALEX"},
		{"Al B", "ALB"},
		{"", "XXXX"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NamePrefix(c.input), "NamePrefix(%q)", c.input)
	}
}

func TestEmployeeCodePrefix(t *testing.T) {
	assert.Equal(t, "OIJODO2022", EmployeeCodePrefix("Odoo India", "John Doe", 2022))
	assert.Equal(t, "DAMAXX2024", EmployeeCodePrefix("Dayflow", "Max", 2024))
}

func TestNextEmployeeCode(t *testing.T) {
	assert.Equal(t, "ACJODO20240001", NextEmployeeCode("ACJODO2024", ""))
	assert.Equal(t, "ACJODO20240002", NextEmployeeCode("ACJODO2024", "ACJODO20240001"))
	assert.Equal(t, "ACJODO20240100", NextEmployeeCode("ACJODO2024", "ACJODO20240099"))
	assert.Equal(t, "ACJODO20240001", NextEmployeeCode("ACJODO2024", "ACJODO2024abcd"))
	assert.Equal(t, "ACJODO20240001", NextEmployeeCode("ACJODO2024", "ZZZZZZ20240007"))
}

func TestGenerateEmployeeCode_Sequence(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	finder := &fakeCodeFinder{}

	first, err := GenerateEmployeeCode(ctx, finder, "Acme Corp", "John Doe", now)
	require.NoError(t, err)
	assert.Equal(t, "ACJODO20240001", first)
	finder.codes = append(finder.codes, first)

	second, err := GenerateEmployeeCode(ctx, finder, "Acme Corp", "John Doe", now)
	require.NoError(t, err)
	assert.Equal(t, "ACJODO20240002", second)

	other, err := GenerateEmployeeCode(ctx, finder, "Acme Corp", "Jane Smith", now)
	require.NoError(t, err)
	assert.Equal(t, "ACJASM20240001", other)
}

func TestGenerateEmployeeCode_PaddedSingleWords(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	code, err := GenerateEmployeeCode(context.Background(), &fakeCodeFinder{}, "Dayflow", "Max", now)
	require.NoError(t, err)
	assert.Equal(t, "DAMAXX20250001", code)
}

func TestGenerateEmployeeCode_FinderError(t *testing.T) {
	finder := &fakeCodeFinder{err: errors.New("boom")}
	_, err := GenerateEmployeeCode(context.Background(), finder, "Acme", "John", time.Now())
	assert.Error(t, err)
}

// racingRepo loses the first `collisions` inserts to a concurrent writer.
type racingRepo struct {
	UserRepository
	fakeCodeFinder
	collisions int
	attempts   []string
}

func (r *racingRepo) LatestEmployeeCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	return r.fakeCodeFinder.LatestEmployeeCodeWithPrefix(ctx, prefix)
}

func (r *racingRepo) Create(_ context.Context, u User) (User, error) {
	r.attempts = append(r.attempts, u.EmployeeCode)
	// The concurrent writer commits the same code first.
	r.codes = append(r.codes, u.EmployeeCode)
	if r.collisions > 0 {
		r.collisions--
		return User{}, ErrEmployeeCodeTaken
	}
	u.ID = "created"
	return u, nil
}

func TestCreateWithEmployeeCode_RetriesOnCollision(t *testing.T) {
	repo := &racingRepo{collisions: 2}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	created, err := CreateWithEmployeeCode(context.Background(), repo, User{Name: "John Doe"}, "Acme Corp", now)
	require.NoError(t, err)
	assert.Equal(t, "ACJODO20240003", created.EmployeeCode)
	assert.Equal(t, []string{"ACJODO20240001", "ACJODO20240002", "ACJODO20240003"}, repo.attempts)
}

func TestCreateWithEmployeeCode_GivesUp(t *testing.T) {
	repo := &racingRepo{collisions: MaxEmployeeCodeAttempts}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := CreateWithEmployeeCode(context.Background(), repo, User{Name: "John Doe"}, "Acme Corp", now)
	assert.ErrorIs(t, err, ErrEmployeeCodeConflict)
	assert.Len(t, repo.attempts, MaxEmployeeCodeAttempts)
}

func TestCreateWithEmployeeCode_OtherErrorsStop(t *testing.T) {
	repo := &racingRepo{}
	repo.err = errors.New("db down")

	_, err := CreateWithEmployeeCode(context.Background(), repo, User{Name: "John Doe"}, "Acme Corp", time.Now())
	assert.Error(t, err)
	assert.Empty(t, repo.attempts)
}
