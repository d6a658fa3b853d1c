package tags

import "github.com/yohamta/donburi"

var (
	Firework  = donburi.NewTag().SetName("Firework")
	Spark     = donburi.NewTag().SetName("Spark")
	Snowflake = donburi.NewTag().SetName("Snowflake")
)
