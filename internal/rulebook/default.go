package rulebook

import "github.com/arnavb2004/Guest-House-Portal/internal/domain"

var (
	deanOffices = []string{
		"RESEARCH AND DEVELOPMENT",
		"STUDENT AFFAIRS",
		"FACULTY AFFAIRS AND ADMINISTRATION",
		"UNDER GRADUATE STUDIES",
		"POST GRADUATE STUDIES",
	}
	associateDeanOffices = []string{
		"HOSTEL MANAGEMENT",
		"INTERNATIONAL RELATIONS AND ALUMNI AFFAIRS",
		"CONTINUING EDUCATION AND OUTREACH ACTIVITIES",
		"INFRASTRUCTURE",
	}
	departments = []string{
		"COMPUTER SCIENCE",
		"ELECTRICAL ENGINEERING",
		"MECHANICAL ENGINEERING",
		"CHEMISTRY",
		"MATHEMATICS",
		"PHYSICS",
		"HUMANITIES AND SOCIAL SCIENCES",
		"BIOMEDICAL ENGINEERING",
		"CHEMICAL ENGINEERING",
		"METALLURGICAL AND MATERIALS ENGINEERING",
		"CIVIL ENGINEERING",
	}
)

func flat(rate int) map[domain.RoomType]int {
	return map[domain.RoomType]int{
		domain.RoomTypeSingle: rate,
		domain.RoomTypeDouble: rate,
	}
}

// Default returns the guest house catalog.
func Default() *Rulebook {
	return New([]Category{
		{
			Code:   domain.CategoryESA,
			Title:  "Executive Suite - Category A",
			Tariff: flat(0),
			Combinations: []Combination{
				{domain.RoleDirector},
				{domain.RoleDean},
			},
			RequiresDocuments: true,
		},
		{
			Code:              domain.CategoryESB,
			Title:             "Executive Suite - Category B",
			Tariff:            flat(3500),
			Combinations:      []Combination{{domain.RoleChairman}},
			RequiresDocuments: true,
		},
		{
			Code:   domain.CategoryBRA,
			Title:  "Business Room - Category A",
			Tariff: flat(0),
			Combinations: []Combination{
				{domain.RoleDirector},
				{domain.RoleRegistrar},
				{domain.RoleDean, domain.RoleAssociateDean},
			},
		},
		{
			Code:   domain.CategoryBRB1,
			Title:  "Business Room - Category B1",
			Tariff: flat(2000),
			Combinations: []Combination{
				{domain.RoleDean, domain.RoleAssociateDean},
				{domain.RoleDean, domain.RoleHOD},
				{domain.RoleDean, domain.RoleRegistrar},
			},
		},
		{
			Code:         domain.CategoryBRB2,
			Title:        "Business Room - Category B2",
			Tariff:       flat(1200),
			Combinations: []Combination{{domain.RoleChairman}},
		},
	}, Authorities{
		domain.RoleDean:          deanOffices,
		domain.RoleAssociateDean: associateDeanOffices,
		domain.RoleHOD:           departments,
	})
}
