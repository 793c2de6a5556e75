package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultCompanyName stands in for a missing tenant name.
	DefaultCompanyName = "Dayflow"
	// MaxEmployeeCodeAttempts bounds regeneration after a code collision.
	MaxEmployeeCodeAttempts = 5
)

// EmployeeCodeFinder looks up the most recently created employee code that
// starts with prefix. It returns "" when there is none.
type EmployeeCodeFinder interface {
	LatestEmployeeCodeWithPrefix(ctx context.Context, prefix string) (string, error)
}

// CompanyPrefix returns the two letter company part of an employee code:
// the initials of the first two words, or the first two characters of a
// single word name.
func CompanyPrefix(companyName string) string {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		companyName = DefaultCompanyName
	}

	words := strings.Fields(companyName)
	if len(words) >= 2 {
		return strings.ToUpper(firstRunes(words[0], 1) + firstRunes(words[1], 1))
	}
	return strings.ToUpper(firstRunes(companyName, 2))
}

// NamePrefix returns the four letter person part of an employee code.
func NamePrefix(name string) string {
	words := strings.Fields(name)
	if len(words) >= 2 {
		return strings.ToUpper(firstRunes(words[0], 2) + firstRunes(words[len(words)-1], 2))
	}

	prefix := strings.ToUpper(firstRunes(strings.TrimSpace(name), 4))
	if n := len([]rune(prefix)); n < 4 {
		prefix += strings.Repeat("X", 4-n)
	}
	return prefix
}

// EmployeeCodePrefix builds the serial-less part, e.g. OIJODO2022.
func EmployeeCodePrefix(companyName, name string, year int) string {
	return CompanyPrefix(companyName) + NamePrefix(name) + strconv.Itoa(year)
}

// NextEmployeeCode appends the serial following lastCode to prefix. An empty
// or unparsable lastCode restarts the serial at 1.
func NextEmployeeCode(prefix, lastCode string) string {
	serial := 1
	if rest, ok := strings.CutPrefix(lastCode, prefix); ok && lastCode != "" {
		if last, ok := leadingInt(rest); ok {
			serial = last + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, serial)
}

// GenerateEmployeeCode derives the next free-looking code for a person. The
// result is only a candidate: uniqueness is enforced by the store.
func GenerateEmployeeCode(ctx context.Context, finder EmployeeCodeFinder, companyName, name string, now time.Time) (string, error) {
	prefix := EmployeeCodePrefix(companyName, name, now.Year())

	last, err := finder.LatestEmployeeCodeWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("find latest employee code: %w", err)
	}

	return NextEmployeeCode(prefix, last), nil
}

// CreateWithEmployeeCode assigns a generated employee code to newUser and
// stores it. When another insert took the code first, the code is
// regenerated, up to MaxEmployeeCodeAttempts times.
func CreateWithEmployeeCode(ctx context.Context, repo UserRepository, newUser User, companyName string, now time.Time) (User, error) {
	for attempt := 0; attempt < MaxEmployeeCodeAttempts; attempt++ {
		code, err := GenerateEmployeeCode(ctx, repo, companyName, newUser.Name, now)
		if err != nil {
			return User{}, err
		}
		newUser.EmployeeCode = code

		created, err := repo.Create(ctx, newUser)
		if errors.Is(err, ErrEmployeeCodeTaken) {
			continue
		}
		if err != nil {
			return User{}, err
		}
		return created, nil
	}
	return User{}, ErrEmployeeCodeConflict
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
