package catalog

import (
	"strings"

	"github.com/powerfrill/showcase-backend-go/internal/models"
)

// HeroSequence is the name of the landing-page hero sequence.
const HeroSequence = "hero"

// SolutionSequencePrefix prefixes sequences built from a solution's categories.
const SolutionSequencePrefix = "solution-"

// HeroSections returns the landing-page hero sections in scroll order.
func HeroSections() []models.Section {
	return []models.Section{
		{ID: "bess", Order: 0, Title: "BESS", Body: "Battery Energy Storage System", MediaRef: unsplash + "photo-1620714223084-8fcacc6dfd8d?w=1920"},
		{ID: "application", Order: 1, Title: "Application", Body: "Power Solutions", MediaRef: unsplash + "photo-1558449028-b53a39d100fc?w=1920"},
		{ID: "innovation", Order: 2, Title: "Innovation", Body: "Next-Gen Technology", MediaRef: unsplash + "photo-1581092160562-40aa08e78837?w=1920"},
		{ID: "about", Order: 3, Title: "About", Body: "Our Mission", MediaRef: unsplash + "photo-1497435334941-8c899ee9e8e9?w=1920"},
		{ID: "contact", Order: 4, Title: "Contact", Body: "Get Connected", MediaRef: unsplash + "photo-1516321318423-f06f85e504b3?w=1920"},
	}
}

// CategorySections turns categories into an order-dense section list.
func CategorySections(categories []models.Category) []models.Section {
	out := make([]models.Section, len(categories))
	for i, c := range categories {
		out[i] = models.Section{
			ID:       c.ID,
			Order:    i,
			Title:    c.Name,
			Body:     c.Description,
			MediaRef: c.ImageRef,
		}
	}
	return out
}

// Sequence resolves a named sequence against the index.
// Unknown names and solutions without categories resolve to ok == false.
func (x *Index) Sequence(name string) (models.Sequence, bool) {
	if name == HeroSequence {
		return models.Sequence{Name: name, Sections: HeroSections()}, true
	}
	solutionID, found := strings.CutPrefix(name, SolutionSequencePrefix)
	if !found {
		return models.Sequence{}, false
	}
	if _, ok := x.SolutionByID(solutionID); !ok {
		return models.Sequence{}, false
	}
	cats := x.CategoriesBySolutionID(solutionID)
	if len(cats) == 0 {
		return models.Sequence{}, false
	}
	return models.Sequence{Name: name, Sections: CategorySections(cats)}, true
}

// SequenceNames lists every sequence the index can resolve.
func (x *Index) SequenceNames() []string {
	names := []string{HeroSequence}
	for _, s := range x.table.Solutions {
		if len(x.CategoriesBySolutionID(s.ID)) > 0 {
			names = append(names, SolutionSequencePrefix+s.ID)
		}
	}
	return names
}
