package rulebook

import (
	"testing"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulebook_ValidateReviewers(t *testing.T) {
	rb := Default()

	tests := []struct {
		name     string
		category domain.Category
		roles    []string
		ok       bool
	}{
		{"ES-A director", domain.CategoryESA, []string{"DIRECTOR"}, true},
		{"ES-A dean", domain.CategoryESA, []string{"DEAN POST GRADUATE STUDIES"}, true},
		{"ES-A director and chairman", domain.CategoryESA, []string{"DIRECTOR", "CHAIRMAN"}, false},
		{"ES-A registrar", domain.CategoryESA, []string{"REGISTRAR"}, false},
		{"ES-B chairman", domain.CategoryESB, []string{"CHAIRMAN"}, true},
		{"ES-B director", domain.CategoryESB, []string{"DIRECTOR"}, false},
		{"BR-A registrar", domain.CategoryBRA, []string{"REGISTRAR"}, true},
		{"BR-A director", domain.CategoryBRA, []string{"DIRECTOR"}, true},
		{"BR-A dean and associate dean", domain.CategoryBRA, []string{"DEAN STUDENT AFFAIRS", "ASSOCIATE DEAN INFRASTRUCTURE"}, true},
		{"BR-A associate dean first", domain.CategoryBRA, []string{"ASSOCIATE DEAN INFRASTRUCTURE", "DEAN STUDENT AFFAIRS"}, true},
		{"BR-A dean alone", domain.CategoryBRA, []string{"DEAN STUDENT AFFAIRS"}, false},
		{"BR-A two deans", domain.CategoryBRA, []string{"DEAN STUDENT AFFAIRS", "DEAN RESEARCH AND DEVELOPMENT"}, false},
		{"BR-B1 dean and registrar", domain.CategoryBRB1, []string{"DEAN STUDENT AFFAIRS", "REGISTRAR"}, true},
		{"BR-B1 dean and hod", domain.CategoryBRB1, []string{"DEAN STUDENT AFFAIRS", "HOD COMPUTER SCIENCE"}, true},
		{"BR-B1 dean alone", domain.CategoryBRB1, []string{"DEAN STUDENT AFFAIRS"}, false},
		{"BR-B1 unknown department", domain.CategoryBRB1, []string{"DEAN STUDENT AFFAIRS", "HOD ASTROLOGY"}, false},
		{"BR-B2 chairman", domain.CategoryBRB2, []string{"CHAIRMAN"}, true},
		{"BR-B2 duplicate chairman", domain.CategoryBRB2, []string{"CHAIRMAN", "CHAIRMAN"}, false},
		{"unknown category", domain.Category("XX"), []string{"CHAIRMAN"}, false},
		{"empty selection", domain.CategoryBRB2, nil, false},
		{"admin is not an authority", domain.CategoryBRB2, []string{"ADMIN"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rb.ValidateReviewers(tt.category, tt.roles)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
			assert.Equal(t, tt.ok, rb.Accepts(tt.category, tt.roles))
		})
	}
}

func TestRulebook_RoomRate(t *testing.T) {
	rb := Default()

	assert.Equal(t, 0, rb.RoomRate(domain.CategoryESA, domain.RoomTypeSingle))
	assert.Equal(t, 3500, rb.RoomRate(domain.CategoryESB, domain.RoomTypeDouble))
	assert.Equal(t, 0, rb.RoomRate(domain.CategoryBRA, domain.RoomTypeDouble))
	assert.Equal(t, 2000, rb.RoomRate(domain.CategoryBRB1, domain.RoomTypeSingle))
	assert.Equal(t, 1200, rb.RoomRate(domain.CategoryBRB2, domain.RoomTypeSingle))
	assert.Equal(t, 0, rb.RoomRate(domain.CategoryBRB2, domain.RoomType("Penthouse")))
	assert.Equal(t, 0, rb.RoomRate(domain.Category("XX"), domain.RoomTypeSingle))
}

func TestRulebook_Cost(t *testing.T) {
	rb := Default()

	assert.Equal(t, 3*2*2000, rb.Cost(domain.CategoryBRB1, domain.RoomTypeSingle, 2, 3))
	assert.Equal(t, 0, rb.Cost(domain.CategoryBRB1, domain.RoomTypeSingle, 0, 3))

	for _, free := range []domain.Category{domain.CategoryESA, domain.CategoryBRA} {
		for n := 1; n <= 5; n++ {
			for days := 1; days <= 10; days++ {
				assert.Zero(t, rb.Cost(free, domain.RoomTypeDouble, n, days))
			}
		}
	}
}

func TestRulebook_Cost_Monotonic(t *testing.T) {
	rb := Default()

	for _, c := range rb.Categories() {
		for _, rt := range []domain.RoomType{domain.RoomTypeSingle, domain.RoomTypeDouble} {
			for n := 1; n < 6; n++ {
				for days := 1; days < 15; days++ {
					base := rb.Cost(c.Code, rt, n, days)
					assert.GreaterOrEqual(t, rb.Cost(c.Code, rt, n+1, days), base)
					assert.GreaterOrEqual(t, rb.Cost(c.Code, rt, n, days+1), base)
				}
			}
		}
	}
}

func TestRulebook_InjectedCatalog(t *testing.T) {
	rb := New([]Category{{
		Code:         domain.CategoryBRB2,
		Tariff:       map[domain.RoomType]int{domain.RoomTypeSingle: 10},
		Combinations: []Combination{{domain.RoleRegistrar}},
	}}, nil)

	assert.True(t, rb.Accepts(domain.CategoryBRB2, []string{"REGISTRAR"}))
	assert.False(t, rb.Accepts(domain.CategoryBRB2, []string{"CHAIRMAN"}))
	assert.False(t, rb.Accepts(domain.CategoryBRB2, []string{"DEAN STUDENT AFFAIRS"}))
	assert.Equal(t, 10, rb.RoomRate(domain.CategoryBRB2, domain.RoomTypeSingle))

	_, ok := rb.Category(domain.CategoryESA)
	assert.False(t, ok)
}
