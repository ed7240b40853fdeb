package obj

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/feketea17/rpi-gb-dungeon/assets"
	"github.com/feketea17/rpi-gb-dungeon/common"
	"github.com/feketea17/rpi-gb-dungeon/levels"
	"github.com/feketea17/rpi-gb-dungeon/prefabs"
)

const (
	levelFadeDuration = 0.5
	scorePerKill      = 100
	scorePerKey       = 50
)

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

// animatedTile cycles its frames on the logical clock. Every instance of
// the same tile id shares the phase because the clock is global.
type animatedTile struct {
	x, y     int
	frames   []*ebiten.Image
	duration float64
}

// LevelLoader owns the level sequence and everything spawned from the
// current level: collision grid, pre-rendered background, animated tiles,
// entities, score. Loading builds into temporaries and commits only on
// success, so a broken level file leaves the running level intact.
type LevelLoader struct {
	sequence []string
	index    int

	cache  *assets.Cache
	sounds Sounds
	clock  *common.Clock

	playerSpec *prefabs.PlayerSpec
	enemySpecs map[string]*prefabs.EnemySpec
	pickupSpec *prefabs.PickupSpec

	collision  [][]bool
	background *ebiten.Image
	animated   []animatedTile

	Player  *Player
	enemies []*Enemy
	pickups []*Pickup
	door    *Door

	hud   *HUD
	Score int

	fade      fadePhase
	fadeStart float64
	fadeImg   *ebiten.Image

	debug bool
}

// NewLevelLoader prepares a loader over the configured level sequence.
// Prefab load failures are fatal for construction; asset failures inside a
// level are not.
func NewLevelLoader(sequence []string, cache *assets.Cache, sounds Sounds, clock *common.Clock) (*LevelLoader, error) {
	if len(sequence) == 0 {
		return nil, fmt.Errorf("level loader: empty level sequence")
	}
	playerSpec, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	enemyRat, err := prefabs.LoadSpec[prefabs.EnemySpec]("enemy_rat.yaml")
	if err != nil {
		return nil, err
	}
	pickupSpec, err := prefabs.LoadSpec[prefabs.PickupSpec]("pickup.yaml")
	if err != nil {
		return nil, err
	}
	fadeImg := ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	fadeImg.Fill(color.Black)
	return &LevelLoader{
		sequence:   sequence,
		cache:      cache,
		sounds:     sounds,
		clock:      clock,
		playerSpec: playerSpec,
		enemySpecs: map[string]*prefabs.EnemySpec{enemyRat.Kind: enemyRat},
		pickupSpec: pickupSpec,
		hud:        NewHUD(cache),
		fadeImg:    fadeImg,
	}, nil
}

func (l *LevelLoader) CurrentLevel() string {
	return l.sequence[l.index]
}

func (l *LevelLoader) SetDebug(debug bool) {
	l.debug = debug
}

// LoadCurrentLevel parses and builds the current level. On any failure it
// logs and returns false with all prior state untouched. Player health and
// score carry over from the previous level; keys do not.
func (l *LevelLoader) LoadCurrentLevel() bool {
	name := l.CurrentLevel()
	b, err := levels.Load(name)
	if err != nil {
		log.Printf("[level] %s: %v", name, err)
		return false
	}
	m, err := levels.Parse(b)
	if err != nil {
		log.Printf("[level] %s: %v", name, err)
		return false
	}

	tileset, err := l.cache.Image(m.Tileset)
	if err != nil {
		log.Printf("[level] %s: tileset %q unavailable: %v", name, m.Tileset, err)
		tileset = nil
	}

	collision := l.buildCollision(m)
	background := l.renderBackground(m, tileset)
	animated := l.buildAnimated(m, tileset)

	var (
		player  *Player
		enemies []*Enemy
		pickups []*Pickup
		door    *Door
		music   string
	)
	for _, obj := range m.Objects {
		switch obj.Type {
		case "player":
			player = NewPlayer(obj.X, obj.Y, l.playerSpec, l.cache, l.sounds, l.clock)
		case "door":
			locked := true
			if v, ok := obj.Properties["locked"].(bool); ok {
				locked = v
			}
			door = NewDoor(obj.X, obj.Y, obj.Width, obj.Height, locked)
		case "enemy":
			kind, _ := obj.Properties["kind"].(string)
			if kind == "" {
				kind = "rat"
			}
			spec, ok := l.enemySpecs[kind]
			if !ok {
				log.Printf("[level] %s: unknown enemy kind %q at (%d,%d), skipping", name, kind, obj.X, obj.Y)
				continue
			}
			movement, _ := obj.Properties["movement"].(string)
			blocks := 2
			if v, ok := obj.Properties["blocks"].(float64); ok {
				blocks = int(v)
			}
			enemies = append(enemies, NewEnemy(obj.X, obj.Y, ParseAxis(movement), blocks, spec, l.cache, l.sounds, l.clock))
		case "pickup":
			kind, _ := obj.Properties["kind"].(string)
			p := NewPickup(obj.X, obj.Y, PickupKind(kind), l.pickupSpec, l.cache, l.sounds, l.clock)
			if p.OffScreen() {
				log.Printf("[level] %s: pickup %q at (%d,%d) is off screen, culled", name, kind, obj.X, obj.Y)
				continue
			}
			pickups = append(pickups, p)
		case "info":
			music, _ = obj.Properties["music"].(string)
		default:
			log.Printf("[level] %s: unknown object type %q, skipping", name, obj.Type)
		}
	}
	if player == nil {
		log.Printf("[level] %s: no player spawn", name)
		return false
	}
	if prev := l.Player; prev != nil {
		player.Health.Current = prev.Health.Current
	}

	l.collision = collision
	l.background = background
	l.animated = animated
	l.Player = player
	l.enemies = enemies
	l.pickups = pickups
	l.door = door
	if music != "" {
		l.sounds.PlayMusic(music)
	}
	log.Printf("[level] loaded %s: %d enemies, %d pickups", name, len(enemies), len(pickups))
	return true
}

// buildCollision converts the colliders layer into a boolean grid. A
// missing layer or ragged rows produce fully blocked cells so bad data
// fails closed.
func (l *LevelLoader) buildCollision(m *levels.Map) [][]bool {
	grid := make([][]bool, m.Height)
	layer, ok := m.Layer(levels.LayerColliders)
	for y := range grid {
		grid[y] = make([]bool, m.Width)
		for x := range grid[y] {
			if !ok || y >= len(layer.Data) || x >= len(layer.Data[y]) {
				grid[y][x] = true
				continue
			}
			grid[y][x] = layer.Data[y][x] >= 0
		}
	}
	if !ok {
		log.Printf("[level] %s: no colliders layer, treating all tiles as blocked", m.Name)
	}
	return grid
}

func (l *LevelLoader) tileImage(tileset *ebiten.Image, cols, size, id int) *ebiten.Image {
	if tileset == nil || id < 0 {
		return nil
	}
	x := (id % cols) * size
	y := (id / cols) * size
	return tileset.SubImage(image.Rect(x, y, x+size, y+size)).(*ebiten.Image)
}

// visualLayers lists the tile layers composited into the pre-rendered
// background, in draw order. Collider tiles carry the wall art, so they
// paint over the floor.
func visualLayers(m *levels.Map) []levels.TileLayer {
	var layers []levels.TileLayer
	for _, name := range []string{levels.LayerBackground, levels.LayerColliders} {
		if layer, ok := m.Layer(name); ok {
			layers = append(layers, layer)
		}
	}
	return layers
}

// renderBackground pre-renders the background and colliders layers into
// one image drawn with a single call per frame.
func (l *LevelLoader) renderBackground(m *levels.Map, tileset *ebiten.Image) *ebiten.Image {
	img := ebiten.NewImage(m.Width*m.TileSize, m.Height*m.TileSize)
	layers := visualLayers(m)
	if len(layers) == 0 {
		log.Printf("[level] %s: no visual layers", m.Name)
		return img
	}
	for _, layer := range layers {
		for y, row := range layer.Data {
			for x, id := range row {
				tile := l.tileImage(tileset, m.TilesetColumns, m.TileSize, id)
				if tile == nil {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x*m.TileSize), float64(y*m.TileSize))
				img.DrawImage(tile, op)
			}
		}
	}
	return img
}

func (l *LevelLoader) buildAnimated(m *levels.Map, tileset *ebiten.Image) []animatedTile {
	defs := make(map[int]levels.TileDef, len(m.TileDefs))
	for _, d := range m.TileDefs {
		defs[d.ID] = d
	}
	layer, ok := m.Layer(levels.LayerAnimated)
	if !ok {
		return nil
	}
	var tiles []animatedTile
	for y, row := range layer.Data {
		for x, id := range row {
			if id < 0 {
				continue
			}
			def, hasDef := defs[id]
			if !hasDef || len(def.Frames) == 0 || def.FrameDuration <= 0 {
				log.Printf("[level] %s: animated tile %d at (%d,%d) has no frames, skipping", m.Name, id, x, y)
				continue
			}
			var frames []*ebiten.Image
			for _, fid := range def.Frames {
				if f := l.tileImage(tileset, m.TilesetColumns, m.TileSize, fid); f != nil {
					frames = append(frames, f)
				}
			}
			if len(frames) == 0 {
				continue
			}
			tiles = append(tiles, animatedTile{
				x:        x * m.TileSize,
				y:        y * m.TileSize,
				frames:   frames,
				duration: def.FrameDuration,
			})
		}
	}
	return tiles
}

// Blocked reports whether the pixel position lands on a collider tile.
// Anything outside the grid is blocked.
func (l *LevelLoader) Blocked(x, y int) bool {
	if x < 0 || y < 0 {
		return true
	}
	tx, ty := x/common.TileSize, y/common.TileSize
	if ty >= len(l.collision) || tx >= len(l.collision[ty]) {
		return true
	}
	return l.collision[ty][tx]
}

// MovePlayer pre-checks the destination against the collision grid, then
// lets the player apply its own cooldown and bounds checks.
func (l *LevelLoader) MovePlayer(dx, dy int) bool {
	if l.fade != fadeNone {
		return false
	}
	tx, ty := l.Player.X+dx*common.TileSize, l.Player.Y+dy*common.TileSize
	if l.Blocked(tx, ty) {
		return false
	}
	return l.Player.Move(dx, dy)
}

// StartTransition begins the level fade. Rejected while one is active.
func (l *LevelLoader) StartTransition() bool {
	if l.fade != fadeNone {
		return false
	}
	l.fade = fadeOut
	l.fadeStart = l.clock.Now()
	return true
}

// Transitioning reports whether a level fade is in progress.
func (l *LevelLoader) Transitioning() bool {
	return l.fade != fadeNone
}

// NextLevel advances to the next level in the sequence. The index clamps
// on the last level and the advance is reported as failed, so the final
// door leaves the player where they are.
func (l *LevelLoader) NextLevel() bool {
	if l.index+1 >= len(l.sequence) {
		return false
	}
	l.index++
	if !l.LoadCurrentLevel() {
		l.index--
		return false
	}
	return true
}

// Update runs one frame of level simulation. The world freezes during a
// fade; only the fade timer runs.
func (l *LevelLoader) Update() {
	if l.fade != fadeNone {
		l.updateFade()
		return
	}
	l.Player.Update()
	for _, e := range l.enemies {
		e.Update(l.Blocked)
	}
	for _, p := range l.pickups {
		p.Update()
	}
	l.checkCollisions()
	l.sweep()
}

func (l *LevelLoader) updateFade() {
	elapsed := l.clock.Now() - l.fadeStart
	switch l.fade {
	case fadeOut:
		if elapsed >= levelFadeDuration {
			l.NextLevel()
			l.fade = fadeIn
			l.fadeStart = l.clock.Now()
		}
	case fadeIn:
		if elapsed >= levelFadeDuration {
			l.fade = fadeNone
		}
	}
}

// checkCollisions resolves player overlaps in a fixed order: one pickup,
// then the door, then enemy contact damage, then the sword hitbox.
func (l *LevelLoader) checkCollisions() {
	playerRect := l.Player.Rect()

	for _, p := range l.pickups {
		if p.Collected() || !playerRect.Intersects(p.Rect()) {
			continue
		}
		if p.Collect(l.Player) {
			if p.Kind == PickupKey {
				l.Score += scorePerKey
			}
			break
		}
	}

	if l.door != nil && playerRect.Intersects(l.door.Rect()) {
		if l.door.Locked {
			l.door.Unlock(l.Player)
		}
		if !l.door.Locked && l.fade == fadeNone {
			l.sounds.Play("wings")
			l.StartTransition()
			return
		}
	}

	if !l.Player.Invincible() {
		for _, e := range l.enemies {
			if e.Dangerous() && playerRect.Intersects(e.Rect()) {
				l.Player.TakeDamage(1)
				break
			}
		}
	}

	if swordRect, ok := l.Player.SwordRect(); ok {
		for _, e := range l.enemies {
			if !e.Dangerous() || !swordRect.Intersects(e.Rect()) {
				continue
			}
			if e.TakeDamage() {
				e.StartDeath()
				l.Score += scorePerKill
			}
			break
		}
	}
}

func (l *LevelLoader) sweep() {
	enemies := l.enemies[:0]
	for _, e := range l.enemies {
		if !e.ShouldBeRemoved() {
			enemies = append(enemies, e)
		}
	}
	l.enemies = enemies

	pickups := l.pickups[:0]
	for _, p := range l.pickups {
		if !p.Collected() {
			pickups = append(pickups, p)
		}
	}
	l.pickups = pickups
}

func (l *LevelLoader) SetPaused(paused bool) {
	l.Player.SetPaused(paused)
	for _, e := range l.enemies {
		e.SetPaused(paused)
	}
	for _, p := range l.pickups {
		p.SetPaused(paused)
	}
}

func (l *LevelLoader) fadeAlpha() float32 {
	t := (l.clock.Now() - l.fadeStart) / levelFadeDuration
	if t > 1 {
		t = 1
	}
	if l.fade == fadeIn {
		return float32(common.Lerp(1, 0, t))
	}
	return float32(common.Lerp(0, 1, t))
}

// Draw renders the level back to front: background, animated tiles,
// pickups, enemies, player, HUD, debug overlay, fade.
func (l *LevelLoader) Draw(screen *ebiten.Image) {
	if l.background != nil {
		screen.DrawImage(l.background, &ebiten.DrawImageOptions{})
	}
	for _, t := range l.animated {
		idx := int(l.clock.Now()/t.duration) % len(t.frames)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.x), float64(t.y))
		screen.DrawImage(t.frames[idx], op)
	}
	for _, p := range l.pickups {
		p.Draw(screen)
	}
	for _, e := range l.enemies {
		e.Draw(screen)
	}
	l.Player.Draw(screen)
	l.hud.Draw(screen, l.Player, l.Score)
	if l.debug {
		l.drawDebug(screen)
	}
	if l.fade != fadeNone {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(l.fadeAlpha())
		screen.DrawImage(l.fadeImg, op)
	}
}

func (l *LevelLoader) drawDebug(screen *ebiten.Image) {
	fillRect := func(r common.Rect, c color.Color) {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
	}
	strokeRect := func(r common.Rect, c color.Color) {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c, false)
	}
	for y, row := range l.collision {
		for x, blocked := range row {
			if blocked {
				fillRect(common.TileRect(x*common.TileSize, y*common.TileSize), color.RGBA{R: 0x80, A: 0x80})
			}
		}
	}
	if l.door != nil {
		c := colornames.Green
		if l.door.Locked {
			c = colornames.Yellow
		}
		fillRect(l.door.Rect(), c)
	}
	for _, p := range l.pickups {
		strokeRect(p.Rect(), colornames.Blue)
	}
	for _, e := range l.enemies {
		strokeRect(e.Rect(), colornames.Blue)
	}
	strokeRect(l.Player.Rect(), colornames.Green)
	if swordRect, ok := l.Player.SwordRect(); ok {
		strokeRect(swordRect, colornames.Yellow)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s player=%s", l.CurrentLevel(), l.Player.State()), 4, common.BaseHeight-16)
}
