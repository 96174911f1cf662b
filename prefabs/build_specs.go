package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type ActorComponentSpec struct {
	Kind string `yaml:"kind"`
}

type BodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	MaxV   float64 `yaml:"max_v"`
}

type SidesComponentSpec struct {
	Sides []string `yaml:"sides"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type KoopaComponentSpec struct {
	RevivalTime int     `yaml:"revival_time"`
	SmertTime   int     `yaml:"smert_time"`
	SlideFrames int     `yaml:"slide_frames"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	LaunchSpeed float64 `yaml:"launch_speed"`
	Score       int     `yaml:"score"`
}

type JumperComponentSpec struct {
	MaxJumps int     `yaml:"max_jumps"`
	Speed    float64 `yaml:"speed"`
}

type GoombaComponentSpec struct {
	WalkSpeed    float64 `yaml:"walk_speed"`
	Score        int     `yaml:"score"`
	SquashFrames int     `yaml:"squash_frames"`
}

type ItemComponentSpec struct {
	Emerge             bool    `yaml:"emerge"`
	Speed              float64 `yaml:"speed"`
	Score              int     `yaml:"score"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
}

type CoinComponentSpec struct {
	Score int     `yaml:"score"`
	Value int     `yaml:"value"`
	Step  float64 `yaml:"step"`
}

type PlayerComponentSpec struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	BounceSpeed float64 `yaml:"bounce_speed"`
	SmallHeight float64 `yaml:"small_height"`
	BigHeight   float64 `yaml:"big_height"`
	HurtFrames  int     `yaml:"hurt_frames"`
	StarFrames  int     `yaml:"star_frames"`
}

type BlockComponentSpec struct {
	Contents  string `yaml:"contents"`
	Remaining int    `yaml:"remaining"`
}

type SpriteComponentSpec struct {
	Category string `yaml:"category"`
	Variant  string `yaml:"variant"`
	Frame    int    `yaml:"frame"`
	FlipX    bool   `yaml:"flip_x"`
}

type AnimationComponentSpec struct {
	Cadence int `yaml:"cadence"`
	Count   int `yaml:"count"`
	Start   int `yaml:"start"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type GroupsComponentSpec []string
