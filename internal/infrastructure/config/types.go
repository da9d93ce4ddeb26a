package config

import "time"

// GameConfig is the root of journey.yaml.
type GameConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Narrative   NarrativeConfig   `yaml:"narrative"`
	Preload     PreloadConfig     `yaml:"preload"`
	Level1      LevelConfig       `yaml:"level1"`
	Level2      LevelConfig       `yaml:"level2"`
	Celebration CelebrationConfig `yaml:"celebration"`
}

type DisplayConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// PhysicsConfig holds world-wide constants. Bodies scale Gravity by their own
// gravity scale.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // 0 = unlimited
}

type NarrativeConfig struct {
	Lifetime time.Duration `yaml:"lifetime"`
	Rise     float64       `yaml:"rise"`
}

type PreloadConfig struct {
	ReadyDelay time.Duration `yaml:"readyDelay"`
	FadeIn     time.Duration `yaml:"fadeIn"`
}

// LevelConfig holds the constants of one platforming level.
type LevelConfig struct {
	Name       string           `yaml:"name"`
	Layout     string           `yaml:"layout"` // distance | journey
	FadeIn     time.Duration    `yaml:"fadeIn"`
	Threshold  int              `yaml:"threshold"`
	Messages   []string         `yaml:"messages"`
	Hint       string           `yaml:"hint"`
	HintDelay  time.Duration    `yaml:"hintDelay"`
	HintFade   time.Duration    `yaml:"hintFade"`
	FloorOut   float64          `yaml:"floorOut"` // margin below the viewport
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Transition TransitionConfig `yaml:"transition"`
}

type PlayerConfig struct {
	Name         string  `yaml:"name"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MoveSpeed    float64 `yaml:"moveSpeed"`
	JumpPower    float64 `yaml:"jumpPower"` // negative = up
	GravityScale float64 `yaml:"gravityScale"`
}

// CameraConfig sizes the dead-zone as a fraction of the viewport.
type CameraConfig struct {
	LerpX     float64 `yaml:"lerpX"`
	LerpY     float64 `yaml:"lerpY"`
	DeadzoneX float64 `yaml:"deadzoneX"`
	DeadzoneY float64 `yaml:"deadzoneY"`
}

// TransitionConfig holds the scripted delays run when the goal is reached.
type TransitionConfig struct {
	FadeDelay    time.Duration `yaml:"fadeDelay"`
	FadeOut      time.Duration `yaml:"fadeOut"`
	Approach     time.Duration `yaml:"approach"`
	ApproachEase string        `yaml:"approachEase"`
	ApproachGap  float64       `yaml:"approachGap"`
	IconDelay    time.Duration `yaml:"iconDelay"`
	IconLifetime time.Duration `yaml:"iconLifetime"`
}

type CelebrationConfig struct {
	FadeIn     time.Duration   `yaml:"fadeIn"`
	ReadyDelay time.Duration   `yaml:"readyDelay"`
	Stars      int             `yaml:"stars"`
	Rain       RainConfig      `yaml:"rain"`
	Fireworks  FireworksConfig `yaml:"fireworks"`
}

// RainConfig drives the falling heart emitter.
type RainConfig struct {
	Interval time.Duration `yaml:"interval"`
	Quantity int           `yaml:"quantity"`
	Lifespan time.Duration `yaml:"lifespan"`
	SpeedMin float64       `yaml:"speedMin"`
	SpeedMax float64       `yaml:"speedMax"`
	AngleMin float64       `yaml:"angleMin"` // degrees, 90 = straight down
	AngleMax float64       `yaml:"angleMax"`
}

type FireworksConfig struct {
	Count     int           `yaml:"count"`
	Interval  time.Duration `yaml:"interval"`
	Particles int           `yaml:"particles"`
	Duration  time.Duration `yaml:"duration"`
	SpeedMin  float64       `yaml:"speedMin"`
	SpeedMax  float64       `yaml:"speedMax"`
}
