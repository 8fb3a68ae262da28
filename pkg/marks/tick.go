// Package marks builds the tick-mark and text-mark groups widgets draw
// along their axes. Positions are Normals, fixed at construction and
// independent of any widget value.
package marks

import (
	"golang.org/x/exp/slices"

	"github.com/justyntemme/audioui/pkg/core"
)

// Tier is the visual prominence of a tick mark. TierOne is the largest.
type Tier uint8

const (
	TierOne Tier = iota
	TierTwo
	TierThree
)

// Tick is one positioned tick mark.
type Tick struct {
	Position core.Normal
	Tier     Tier
}

// Group is a set of tick marks bucketed by tier, the shape the mark
// renderers consume.
type Group struct {
	tier1 []core.Normal
	tier2 []core.Normal
	tier3 []core.Normal
	len   int
}

// FromTicks buckets a list of tick marks into a Group.
func FromTicks(ticks []Tick) Group {
	g := Group{len: len(ticks)}
	for _, tm := range ticks {
		switch tm.Tier {
		case TierOne:
			g.tier1 = append(g.tier1, tm.Position)
		case TierTwo:
			g.tier2 = append(g.tier2, tm.Position)
		default:
			g.tier3 = append(g.tier3, tm.Position)
		}
	}
	return g
}

// Center returns a Group with a single tick mark at 0.5.
func Center(tier Tier) Group {
	return FromTicks([]Tick{{Position: core.NormalCenter(), Tier: tier}})
}

// MinMax returns a Group with tick marks at 0 and 1.
func MinMax(tier Tier) Group {
	return FromTicks([]Tick{
		{Position: core.NormalMin(), Tier: tier},
		{Position: core.NormalMax(), Tier: tier},
	})
}

// MinMaxAndCenter returns a Group with tick marks at 0, 0.5 and 1.
func MinMaxAndCenter(minMaxTier, centerTier Tier) Group {
	return FromTicks([]Tick{
		{Position: core.NormalMin(), Tier: minMaxTier},
		{Position: core.NormalCenter(), Tier: centerTier},
		{Position: core.NormalMax(), Tier: minMaxTier},
	})
}

// EvenlySpaced returns a Group of n tick marks at i/(n-1).
func EvenlySpaced(n int, tier Tier) Group {
	ticks := make([]Tick, 0, n)

	if n == 1 {
		ticks = append(ticks, Tick{Position: core.NormalMin(), Tier: tier})
	} else if n > 1 {
		span := 1.0 / float32(n-1)
		for i := 0; i < n-1; i++ {
			ticks = append(ticks, Tick{
				Position: core.NewNormal(float32(i) * span),
				Tier:     tier,
			})
		}
		ticks = append(ticks, Tick{Position: core.NormalMax(), Tier: tier})
	}

	return FromTicks(ticks)
}

// Subdivided creates a group of tick marks by subdividing the range.
//
// one is the number of tier 1 marks: 1 puts a single mark at the center,
// 3 puts marks at 0.25, 0.5 and 0.75. two is the number of tier 2 marks
// between neighboring tier 1 marks, and three the number of tier 3 marks
// between neighboring tier 2 marks.
func Subdivided(one, two, three int) Group {
	return subdivide(one, two, three, nil)
}

// SubdividedWithSides is Subdivided plus marks of the given tier at 0
// and 1.
func SubdividedWithSides(one, two, three int, sides Tier) Group {
	return subdivide(one, two, three, &sides)
}

func subdivide(one, two, three int, sides *Tier) Group {
	// A negative tier 1 count falls back to the single center mark.
	if one < 0 {
		one = 1
	}
	if two < 0 {
		two = 0
	}
	if three < 0 {
		three = 0
	}

	ticks := make([]Tick, 0, one+two*one+three*two*one+2)

	oneRanges := one + 1
	twoRanges := two + 1
	threeRanges := three + 1

	oneSpan := 1.0 / float32(oneRanges)
	twoSpan := oneSpan / float32(twoRanges)
	threeSpan := twoSpan / float32(threeRanges)

	for i1 := 0; i1 < oneRanges; i1++ {
		onePos := float32(i1)*oneSpan + oneSpan

		if i1 != one {
			ticks = append(ticks, Tick{
				Position: core.NewNormal(onePos),
				Tier:     TierOne,
			})
		}

		for i2 := 0; i2 < twoRanges; i2++ {
			twoPos := float32(i2)*twoSpan + twoSpan

			if i2 != two {
				ticks = append(ticks, Tick{
					Position: core.NewNormal(onePos - twoPos),
					Tier:     TierTwo,
				})
			}

			for i3 := 0; i3 < three; i3++ {
				threePos := float32(i3)*threeSpan + threeSpan

				ticks = append(ticks, Tick{
					Position: core.NewNormal(onePos - twoPos + threePos),
					Tier:     TierThree,
				})
			}
		}
	}

	if sides != nil {
		ticks = append(ticks,
			Tick{Position: core.NormalMin(), Tier: *sides},
			Tick{Position: core.NormalMax(), Tier: *sides},
		)
	}

	return FromTicks(ticks)
}

// Len returns the total number of tick marks.
func (g Group) Len() int {
	return g.len
}

// Tier1 returns the tier 1 positions, nil when there are none.
func (g Group) Tier1() []core.Normal {
	return g.tier1
}

// Tier2 returns the tier 2 positions, nil when there are none.
func (g Group) Tier2() []core.Normal {
	return g.tier2
}

// Tier3 returns the tier 3 positions, nil when there are none.
func (g Group) Tier3() []core.Normal {
	return g.tier3
}

// Positions returns every position in ascending order.
func (g Group) Positions() []core.Normal {
	all := make([]core.Normal, 0, g.len)
	all = append(all, g.tier1...)
	all = append(all, g.tier2...)
	all = append(all, g.tier3...)
	slices.SortFunc(all, func(a, b core.Normal) bool {
		return a.Value() < b.Value()
	})
	return all
}
