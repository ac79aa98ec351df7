package menu

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aggregatorFunc adapts a function to the Aggregating interface
type aggregatorFunc func(ctx context.Context, date string) []SourceMenus

func (f aggregatorFunc) Aggregate(ctx context.Context, date string) []SourceMenus {
	return f(ctx, date)
}

func staticAggregator(menus []SourceMenus) Aggregating {
	return aggregatorFunc(func(context.Context, string) []SourceMenus { return menus })
}

func TestBuilder_Digest(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	menus := []SourceMenus{
		{
			Source: Source{Name: "기숙사식당", ArticleID: "63"},
			Meals: map[MealSlot]string{
				Lunch:  "[배식 안내] 11시 30분부터\n제육볶음\n쌀밥",
				Dinner: "비빔밥",
			},
		},
		{
			Source: Source{Name: "교직원식당", ArticleID: "221904"},
			Meals: map[MealSlot]string{
				Lunch:  NoMenu,
				Dinner: "",
			},
		},
	}

	b := NewBuilder(staticAggregator(menus), "아주대 식당 메뉴", seoul)
	text := b.Digest(context.Background(), "2025-09-10")

	t.Run("header and sign-off", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(text, "아주대 식당 메뉴 (2025-09-10)\n"))
		assert.True(t, strings.HasSuffix(text, "맛있게 드세요!"))
	})

	t.Run("sources in configured order", func(t *testing.T) {
		first := strings.Index(text, "기숙사식당")
		second := strings.Index(text, "교직원식당")
		require.NotEqual(t, -1, first)
		require.NotEqual(t, -1, second)
		assert.Less(t, first, second)
	})

	t.Run("noise cleaned and items bulleted", func(t *testing.T) {
		assert.Contains(t, text, "• 제육볶음\n• 쌀밥")
		assert.NotContains(t, text, "배식 안내")
	})

	t.Run("lunch rendered before dinner", func(t *testing.T) {
		section := text[strings.Index(text, "기숙사식당"):strings.Index(text, "교직원식당")]
		assert.Less(t, strings.Index(section, "점심"), strings.Index(section, "저녁"))
	})

	t.Run("missing menus use placeholder", func(t *testing.T) {
		assert.Contains(t, text, NoMenu)
	})
}

func TestBuilder_Digest_SingleCharItemsDropped(t *testing.T) {
	menus := []SourceMenus{{
		Source: Source{Name: "기숙사식당"},
		Meals: map[MealSlot]string{
			Lunch:  "김치찌개\n-\n밥",
			Dinner: "ㅡ\n.",
		},
	}}

	b := NewBuilder(staticAggregator(menus), "아주대 식당 메뉴", time.UTC)
	text := b.Digest(context.Background(), "2025-09-10")

	assert.Contains(t, text, "• 김치찌개\n• 밥")
	assert.NotContains(t, text, "• -")
	assert.Contains(t, text, NoMenuInfo, "section with only artifacts renders the info placeholder")
}

func TestBuilder_Digest_FailedSource(t *testing.T) {
	menus := []SourceMenus{{
		Source: Source{Name: "교직원식당"},
		Meals:  map[MealSlot]string{Lunch: LookupFailed, Dinner: LookupFailed},
	}}

	b := NewBuilder(staticAggregator(menus), "아주대 식당 메뉴", time.UTC)
	text := b.Digest(context.Background(), "2025-09-10")

	assert.Contains(t, text, "• "+LookupFailed, "failure sentinel is rendered as a visible item")
}

func TestBuilder_Digest_DefaultDate(t *testing.T) {
	var gotDate string
	agg := aggregatorFunc(func(_ context.Context, date string) []SourceMenus {
		gotDate = date
		return nil
	})

	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	b := NewBuilder(agg, "아주대 식당 메뉴", seoul)
	b.Digest(context.Background(), "")

	assert.Equal(t, time.Now().In(seoul).Format("2006-01-02"), gotDate)
}

func TestBuilder_Digest_Idempotent(t *testing.T) {
	menus := []SourceMenus{{
		Source: Source{Name: "기숙사식당"},
		Meals:  map[MealSlot]string{Lunch: "제육볶음", Dinner: "비빔밥"},
	}}

	b := NewBuilder(staticAggregator(menus), "아주대 식당 메뉴", time.UTC)
	first := b.Digest(context.Background(), "2025-09-10")
	second := b.Digest(context.Background(), "2025-09-10")
	assert.Equal(t, first, second)
}

func TestBuilder_Digest_NeverFails(t *testing.T) {
	agg := aggregatorFunc(func(context.Context, string) []SourceMenus {
		panic("upstream parser blew up")
	})

	b := NewBuilder(agg, "아주대 식당 메뉴", time.UTC)
	text := b.Digest(context.Background(), "2025-09-10")

	assert.NotEmpty(t, text)
	assert.Contains(t, text, "오류가 발생했습니다")
	assert.Contains(t, text, "upstream parser blew up")
}
