package menu

import "fmt"

// Sentinel values carried inside menu text instead of structured errors.
// Downstream consumers match on the exact strings, keep them stable.
const (
	NoMenu       = "메뉴 없음"      // upstream page has no section for the meal
	LookupFailed = "메뉴 조회 실패" // fetch or parse of the source failed
	NoMenuInfo   = "메뉴 정보 없음" // section existed but held nothing usable
)

// Source identifies one dining hall on the university food page
type Source struct {
	Name      string // display name, e.g. 기숙사식당
	ArticleID string // opaque upstream article number addressing the hall
}

// MealSlot is one meal section of the day, ordering is significant for rendering
type MealSlot int

// meal slots in rendering order
const (
	Lunch MealSlot = iota
	Dinner
)

// Slots returns all meal slots in rendering order
func Slots() []MealSlot {
	return []MealSlot{Lunch, Dinner}
}

// Marker returns the structural class marker used by the upstream page
func (m MealSlot) Marker() string {
	switch m {
	case Lunch:
		return "lunch"
	case Dinner:
		return "dinner"
	}
	return "unknown"
}

// Label returns the human-readable meal name for the digest
func (m MealSlot) Label() string {
	switch m {
	case Lunch:
		return "점심"
	case Dinner:
		return "저녁"
	}
	return "기타"
}

func (m MealSlot) String() string { return m.Marker() }

// SourceMenus holds the raw per-meal text scraped for one source
type SourceMenus struct {
	Source Source
	Meals  map[MealSlot]string
}

// FetchError reports a failed upstream menu page retrieval for one source
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch menu for %s from %s: %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
