package menu

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
)

// Aggregating joins the per-source raw menus for a date
type Aggregating interface {
	Aggregate(ctx context.Context, date string) []SourceMenus
}

// Builder renders the aggregated menus into the final human-readable digest
type Builder struct {
	aggregator Aggregating
	title      string
	loc        *time.Location
}

// NewBuilder creates a digest builder. The title heads every digest and the
// location decides what "today" means when no date is requested.
func NewBuilder(aggregator Aggregating, title string, loc *time.Location) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{aggregator: aggregator, title: title, loc: loc}
}

// Digest builds the full menu digest for the given date, empty date meaning
// today in the configured timezone. The contract is total: whatever goes
// wrong inside the fetch/normalize/render chain ends up as explanatory text
// in the returned string, never as an error to the caller.
func (b *Builder) Digest(ctx context.Context, date string) (text string) {
	if date == "" {
		date = time.Now().In(b.loc).Format("2006-01-02")
	}

	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] digest build failed for %s: %v", date, r)
			text = fmt.Sprintf("메뉴 조회 중 오류가 발생했습니다: %v", r)
		}
	}()

	menus := b.aggregator.Aggregate(ctx, date)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n\n", b.title, date)

	for _, sm := range menus {
		sb.WriteString(sm.Source.Name + "\n")
		sb.WriteString(strings.Repeat("─", 20) + "\n")

		for _, slot := range Slots() {
			sb.WriteString(slot.Label() + "\n")
			sb.WriteString(renderMeal(sm.Meals[slot]))
			sb.WriteString("\n\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("맛있게 드세요!")
	return sb.String()
}

// renderMeal normalizes one meal's raw text and renders it as bulleted item
// lines. Empty or absent menus come out as fixed placeholder phrases.
func renderMeal(raw string) string {
	clean := Normalize(raw)
	if clean == "" || clean == NoMenu {
		return NoMenu
	}

	var items []string
	for _, line := range strings.Split(clean, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= 1 { // single-rune lines are visual artifacts
			continue
		}
		items = append(items, "• "+line)
	}
	if len(items) == 0 {
		return NoMenuInfo
	}
	return strings.Join(items, "\n")
}
