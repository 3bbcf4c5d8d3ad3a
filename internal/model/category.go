package model

import "strings"

// Subject categories used to group freeform topic texts for display.
const (
	CategoryTYTMath      = "TYT Matematik"
	CategoryTYTBiology   = "TYT Biyoloji"
	CategoryTYTPhysics   = "TYT Fizik"
	CategoryTYTChemistry = "TYT Kimya"
	CategoryAYTMath      = "AYT Matematik"
	CategoryAYTBiology   = "AYT Biyoloji"
	CategoryAYTPhysics   = "AYT Fizik"
	CategoryAYTChemistry = "AYT Kimya"
	CategoryGeometry     = "TYT/AYT Geometri"
	CategoryGeneral      = "Genel"
)

// CategoryRule maps a keyword set to a category. A rule matches only
// when every keyword occurs in the lowered topic text.
type CategoryRule struct {
	Keywords []string
	Category string
}

// CategoryRules is evaluated in order, first match wins. The ordering
// is load-bearing: exam-track rules ("tyt"/"ayt" plus a subject) must
// come before the bare subject rules, or "ayt matematik" would be
// classified as TYT math.
var CategoryRules = []CategoryRule{
	{Keywords: []string{"tyt", "matematik"}, Category: CategoryTYTMath},
	{Keywords: []string{"tyt", "biyoloji"}, Category: CategoryTYTBiology},
	{Keywords: []string{"tyt", "fizik"}, Category: CategoryTYTPhysics},
	{Keywords: []string{"tyt", "kimya"}, Category: CategoryTYTChemistry},
	{Keywords: []string{"ayt", "matematik"}, Category: CategoryAYTMath},
	{Keywords: []string{"ayt", "biyoloji"}, Category: CategoryAYTBiology},
	{Keywords: []string{"ayt", "fizik"}, Category: CategoryAYTPhysics},
	{Keywords: []string{"ayt", "kimya"}, Category: CategoryAYTChemistry},
	{Keywords: []string{"geometri"}, Category: CategoryGeometry},
	{Keywords: []string{"matematik"}, Category: CategoryTYTMath},
	{Keywords: []string{"biyoloji"}, Category: CategoryTYTBiology},
	{Keywords: []string{"fizik"}, Category: CategoryTYTPhysics},
	{Keywords: []string{"kimya"}, Category: CategoryTYTChemistry},
}

// Categorize tags a freeform topic text with a subject category.
// Unmatched texts fall back to the general category.
func Categorize(text string) string {
	if strings.TrimSpace(text) == "" {
		return CategoryGeneral
	}

	lowered := strings.ToLower(text)
	for _, rule := range CategoryRules {
		matched := true
		for _, kw := range rule.Keywords {
			if !strings.Contains(lowered, kw) {
				matched = false
				break
			}
		}
		if matched {
			return rule.Category
		}
	}
	return CategoryGeneral
}
