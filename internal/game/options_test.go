package game

import "testing"

func TestBuildLevelUpOptions(t *testing.T) {
	fullHP := func(p *Player) { p.HP.Current = p.HP.Max }

	tests := []struct {
		name  string
		setup func(*Player)
		want  []LevelUpOption
	}{
		{
			"fresh player is injured by definition",
			func(p *Player) {},
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterAdd, OptionHealHP},
		},
		{
			"full hp offers speed instead",
			fullHP,
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterAdd, OptionSpeedUp},
		},
		{
			"holy water owned flips add to upgrade",
			func(p *Player) {
				fullHP(p)
				p.AddWeapon(WeaponHolyWater)
			},
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterUpgrade, OptionSpeedUp},
		},
		{
			"speed capped falls through to attack speed",
			func(p *Player) {
				fullHP(p)
				p.BaseSpeed = PlayerMaxSpeed
			},
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterAdd, OptionAttackSpeed},
		},
		{
			"attack speed maxed falls through to regen",
			func(p *Player) {
				fullHP(p)
				p.BaseSpeed = PlayerMaxSpeed
				p.Passives[PassiveAttackSpeed] = passiveMaxLevel
			},
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterAdd, OptionHPRegen},
		},
		{
			"everything maxed leaves two",
			func(p *Player) {
				fullHP(p)
				p.BaseSpeed = PlayerMaxSpeed
				p.Passives[PassiveAttackSpeed] = passiveMaxLevel
				p.Passives[PassiveHPRegen] = passiveMaxLevel
			},
			[]LevelUpOption{OptionKnifeUpgrade, OptionHolyWaterAdd},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			tt.setup(&p)
			got := buildLevelUpOptions(&p)
			if len(got) > MaxLevelUpOptions {
				t.Fatalf("Expected at most %d options, got %d", MaxLevelUpOptions, len(got))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d options, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Expected option %d to be %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestKnifeUpgradeAlwaysFirst(t *testing.T) {
	p := NewPlayer()
	p.AddWeapon(WeaponHolyWater)
	p.Passives[PassiveAttackSpeed] = passiveMaxLevel
	opts := buildLevelUpOptions(&p)
	if len(opts) == 0 || opts[0] != OptionKnifeUpgrade {
		t.Errorf("Expected the knife upgrade to lead the list, got %v", opts)
	}
}

func TestApplyLevelUpOption(t *testing.T) {
	t.Run("knife upgrade", func(t *testing.T) {
		p := NewPlayer()
		applyLevelUpOption(&p, OptionKnifeUpgrade)
		if p.Weapons[0].Level != 2 {
			t.Errorf("Expected the knife at level 2, got %d", p.Weapons[0].Level)
		}
	})
	t.Run("holy water add", func(t *testing.T) {
		p := NewPlayer()
		applyLevelUpOption(&p, OptionHolyWaterAdd)
		if !p.HasWeapon(WeaponHolyWater) {
			t.Error("Expected the player to own holy water")
		}
	})
	t.Run("heal is capped", func(t *testing.T) {
		p := NewPlayer()
		p.HP.Current = 170
		applyLevelUpOption(&p, OptionHealHP)
		if p.HP.Current != PlayerMaxHP {
			t.Errorf("Expected hp to cap at %v, got %v", PlayerMaxHP, p.HP.Current)
		}
	})
	t.Run("heal below the cap", func(t *testing.T) {
		p := NewPlayer()
		p.HP.Current = 100
		applyLevelUpOption(&p, OptionHealHP)
		if p.HP.Current != 150 {
			t.Errorf("Expected hp to be 150, got %v", p.HP.Current)
		}
	})
	t.Run("passives level", func(t *testing.T) {
		p := NewPlayer()
		applyLevelUpOption(&p, OptionSpeedUp)
		applyLevelUpOption(&p, OptionAttackSpeed)
		applyLevelUpOption(&p, OptionAttackSpeed)
		applyLevelUpOption(&p, OptionHPRegen)
		if p.Passives[PassiveSpeedUp] != 1 || p.Passives[PassiveAttackSpeed] != 2 || p.Passives[PassiveHPRegen] != 1 {
			t.Errorf("Expected passive levels (1, 2, 1), got %v", p.Passives)
		}
	})
}

func TestOptionLabels(t *testing.T) {
	for o := LevelUpOption(0); o < LevelUpOptionCount; o++ {
		if o.Label() == "" {
			t.Errorf("Expected option %d to carry a label", o)
		}
	}
}
