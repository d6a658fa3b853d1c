package archetypes

import (
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Firework = newArchetype(
		tags.Firework,
		components.Firework,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	Snowflake = newArchetype(
		tags.Snowflake,
		components.Snowflake,
	)
	Launcher = newArchetype(
		components.Launcher,
	)
	Countdown = newArchetype(
		components.Countdown,
	)
	Trivia = newArchetype(
		components.Trivia,
	)
	Entrance = newArchetype(
		components.Entrance,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
