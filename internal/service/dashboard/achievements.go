package dashboard

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

const (
	maxPercent = 99
	maxStreak  = 29
)

// Achievements generates mock progress from seed. Equal seeds give equal
// results.
func Achievements(seed int64) domain.Achievements {
	faker := gofakeit.New(seed)

	skills := content.Skills()
	out := domain.Achievements{
		Skills: make([]domain.SkillProgress, len(skills)),
		Week:   make([]domain.DayActivity, 0, len(content.Weekdays())),
	}
	for i, skill := range skills {
		out.Skills[i] = domain.SkillProgress{
			Skill:   skill,
			Percent: faker.Number(0, maxPercent),
			Streak:  faker.Number(0, maxStreak),
		}
	}
	for _, day := range content.Weekdays() {
		out.Week = append(out.Week, domain.DayActivity{
			Day:     day,
			Percent: faker.Number(0, maxPercent),
		})
	}
	return out
}
