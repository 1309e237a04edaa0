package game

// Difficulty ramps with survived minutes: enemies spawn faster and
// arrive tougher. All curves are linear in the minute counter.

// spawnIntervalAt returns the tick gap between spawns at the given
// minute, floored so late game never degenerates into a solid stream.
func spawnIntervalAt(minutes int) int {
	interval := SpawnInterval - SpawnIntervalCut*minutes
	if interval < SpawnIntervalMin {
		return SpawnIntervalMin
	}
	return interval
}

// scaleEnemy applies the minute multipliers to a freshly spawned
// enemy. HP and exp truncate toward zero, matching their int fields.
func scaleEnemy(e *Enemy, minutes int) {
	if minutes <= 0 {
		return
	}
	m := float64(minutes)
	e.HP = int(float64(e.HP) * (1 + 0.1*m))
	e.Speed *= 1 + 0.05*m
	e.Exp = int(float64(e.Exp) * (1 + 0.2*m))
}
