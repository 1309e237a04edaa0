package game

import "fmt"

// LevelUpOption is one entry in the level-up choice menu.
type LevelUpOption int

const (
	OptionKnifeUpgrade LevelUpOption = iota
	OptionHolyWaterAdd
	OptionHolyWaterUpgrade
	OptionHealHP
	OptionSpeedUp
	OptionAttackSpeed
	OptionHPRegen

	LevelUpOptionCount // must stay last
)

func (o LevelUpOption) Label() string {
	switch o {
	case OptionKnifeUpgrade:
		return "Upgrade Knife"
	case OptionHolyWaterAdd:
		return "Add Holy Water"
	case OptionHolyWaterUpgrade:
		return "Upgrade Holy Water"
	case OptionHealHP:
		return "Restore HP"
	case OptionSpeedUp:
		return "Move Speed Up"
	case OptionAttackSpeed:
		return "Attack Speed Up"
	case OptionHPRegen:
		return "HP Regen"
	}
	return fmt.Sprintf("LevelUpOption(%d)", int(o))
}

const (
	healOptionAmount = 50.0
	passiveMaxLevel  = 5
)

// buildLevelUpOptions assembles the choice list in fixed priority
// order, dropping entries that would have no effect, then truncates
// to MaxLevelUpOptions.
func buildLevelUpOptions(p *Player) []LevelUpOption {
	opts := []LevelUpOption{OptionKnifeUpgrade}
	if p.HasWeapon(WeaponHolyWater) {
		opts = append(opts, OptionHolyWaterUpgrade)
	} else {
		opts = append(opts, OptionHolyWaterAdd)
	}
	if p.HP.IsInjured() {
		opts = append(opts, OptionHealHP)
	}
	if p.Speed() < PlayerMaxSpeed {
		opts = append(opts, OptionSpeedUp)
	}
	if p.Passives[PassiveAttackSpeed] < passiveMaxLevel {
		opts = append(opts, OptionAttackSpeed)
	}
	if p.Passives[PassiveHPRegen] < passiveMaxLevel {
		opts = append(opts, OptionHPRegen)
	}
	if len(opts) > MaxLevelUpOptions {
		opts = opts[:MaxLevelUpOptions]
	}
	return opts
}

func applyLevelUpOption(p *Player, o LevelUpOption) {
	switch o {
	case OptionKnifeUpgrade:
		p.UpgradeWeapon(WeaponKnife)
	case OptionHolyWaterAdd:
		p.AddWeapon(WeaponHolyWater)
	case OptionHolyWaterUpgrade:
		p.UpgradeWeapon(WeaponHolyWater)
	case OptionHealHP:
		p.HP.Heal(healOptionAmount)
	case OptionSpeedUp:
		p.AddPassive(PassiveSpeedUp)
	case OptionAttackSpeed:
		p.AddPassive(PassiveAttackSpeed)
	case OptionHPRegen:
		p.AddPassive(PassiveHPRegen)
	default:
		panic(fmt.Sprintf("unknown level-up option %d", int(o)))
	}
}
