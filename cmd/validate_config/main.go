// validate_config 校验游戏配置文件并打印关卡表
//
// 用法:
//
//	go run ./cmd/validate_config [-root .] [-all] [-enemy boss] [-levels 5] [-export yaml|toml] [-simulate 3600 -seed 1] [path]
//
// path 省略时校验 <root>/data/game.yaml；-all 校验 <root>/data 下全部 yaml/toml 配置。
// -simulate 在无窗口模式下用自动驾驶跑若干 tick，用于检查调参后的节奏。
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/types"
	"gopkg.in/yaml.v3"
)

const defaultPath = "data/game.yaml"

// configPatterns data/ 下会被 -all 校验的文件
var configPatterns = []string{"data/*.yaml", "data/*.yml", "data/*.toml"}

func main() {
	root := flag.String("root", ".", "项目根目录，data/ 相对它查找")
	all := flag.Bool("all", false, "校验 data/ 下的全部配置文件")
	enemy := flag.String("enemy", "", "打印指定敌机类型（normal、middle、boss）的模板")
	levels := flag.Int("levels", 5, "打印的关卡数")
	export := flag.String("export", "", "以 yaml 或 toml 格式输出合并默认值后的完整配置")
	simulate := flag.Int("simulate", 0, "无窗口模拟的 tick 数，0 表示不模拟")
	seed := flag.Uint64("seed", 1, "模拟使用的随机种子")
	flag.Parse()

	embedded.Init(os.DirFS(*root))

	if *all {
		if failed := validateBundled(os.Stdout); failed > 0 {
			os.Exit(1)
		}
		return
	}

	path, cfg, err := loadTarget(flag.Args())
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置格式正确: %s\n", path)
	fmt.Printf("✅ 游戏区域 %dx%d，子弹上限 %d\n", cfg.Playfield.Width, cfg.Playfield.Height, cfg.Bullet.MaxLive)

	printLevelTable(os.Stdout, levelTable(cfg, *levels))

	if *enemy != "" {
		if err := printEnemy(os.Stdout, cfg, *enemy); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	}

	if *export != "" {
		if err := exportConfig(os.Stdout, cfg, *export); err != nil {
			fmt.Printf("❌ 导出失败: %v\n", err)
			os.Exit(1)
		}
	}

	if *simulate > 0 {
		result, err := runSimulation(cfg, *seed, *simulate)
		if err != nil {
			fmt.Printf("❌ 模拟失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ 模拟 %d tick: 分数 %d，到达第 %d 关，结束=%v，重新开始 %d 次\n",
			result.Ticks, result.Score, result.Level, result.GameOver, result.Restarts)
	}
}

// loadTarget 加载命令行指定的配置
// 指定了路径时直接从磁盘读取，否则读取根目录下的 data/game.yaml
func loadTarget(args []string) (string, *config.GameConfig, error) {
	if len(args) > 0 {
		cfg, err := config.LoadGameConfigFile(args[0])
		return args[0], cfg, err
	}
	if !embedded.Exists(defaultPath) {
		return defaultPath, nil, fmt.Errorf("%s not found, use -root to point at the project directory", defaultPath)
	}
	cfg, err := config.LoadGameConfig(defaultPath)
	return defaultPath, cfg, err
}

// bundledConfigs 列出 data/ 下的全部配置文件，按路径排序
func bundledConfigs() ([]string, error) {
	var paths []string
	for _, pattern := range configPatterns {
		matches, err := embedded.Glob(pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

// validateBundled 逐个校验 data/ 下的配置，返回失败的文件数
func validateBundled(w io.Writer) int {
	paths, err := bundledConfigs()
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return 1
	}
	if len(paths) == 0 {
		fmt.Fprintln(w, "❌ data/ 下没有配置文件")
		return 1
	}

	failed := 0
	for _, path := range paths {
		if _, err := config.LoadGameConfig(path); err != nil {
			fmt.Fprintf(w, "❌ %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(w, "✅ %s\n", path)
	}
	fmt.Fprintf(w, "共 %d 个配置，%d 个失败\n", len(paths), failed)
	return failed
}

// printEnemy 打印某种敌机的模板，Boss 的血量和分值另见关卡表
func printEnemy(w io.Writer, cfg *config.GameConfig, name string) error {
	enemyType, err := types.ParseEnemyType(name)
	if err != nil {
		return err
	}
	tpl, ok := cfg.Enemies.Get(enemyType)
	if !ok {
		return fmt.Errorf("no template for enemy type %s", enemyType)
	}
	fmt.Fprintf(w, "%s: %.0fx%.0f speed=%.2f health=%d points=%d\n",
		enemyType, tpl.Width, tpl.Height, tpl.Speed, tpl.Health, tpl.Points)
	if enemyType.IsBoss() {
		fmt.Fprintln(w, "boss health and points scale per level, see the level table")
	}
	return nil
}

// levelRow 某一关的关键数值
type levelRow struct {
	Level           int
	EnemiesRequired int
	BossHealth      int
	BossPoints      int
}

func levelTable(cfg *config.GameConfig, n int) []levelRow {
	rows := make([]levelRow, 0, max(n, 0))
	for level := 1; level <= n; level++ {
		rows = append(rows, levelRow{
			Level:           level,
			EnemiesRequired: cfg.EnemiesRequiredForLevel(level),
			BossHealth:      cfg.BossHealthForLevel(level),
			BossPoints:      cfg.BossPointsForLevel(level),
		})
	}
	return rows
}

func printLevelTable(w io.Writer, rows []levelRow) {
	fmt.Fprintf(w, "%-6s %-8s %-8s %-8s\n", "Level", "Quota", "BossHP", "BossPts")
	for _, r := range rows {
		fmt.Fprintf(w, "%-6d %-8d %-8d %-8d\n", r.Level, r.EnemiesRequired, r.BossHealth, r.BossPoints)
	}
}

// exportConfig 输出完整配置，方便在默认值基础上修改
func exportConfig(w io.Writer, cfg *config.GameConfig, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	default:
		return fmt.Errorf("unknown export format %q (want yaml or toml)", format)
	}
}

// simulationResult 无窗口模拟的结果
type simulationResult struct {
	Ticks    int
	Score    int
	Level    int
	GameOver bool
	Restarts int
}

// runSimulation 用简单的自动驾驶推进模拟：追踪最近的敌机并持续开火，被撞毁后立即重新开始
func runSimulation(cfg *config.GameConfig, seed uint64, ticks int) (simulationResult, error) {
	module, err := modules.NewBattleModule(cfg, entities.NewRandom(seed))
	if err != nil {
		return simulationResult{}, err
	}

	var result simulationResult
	controls := module.Controls()
	for i := 0; i < ticks; i++ {
		snap := module.Snapshot()
		if snap.GameOver {
			controls.RequestRestart()
			result.Restarts++
		} else {
			left, right := autopilot(snap)
			controls.SetLeft(left)
			controls.SetRight(right)
			controls.RequestFire()
		}
		module.Tick()
		result.Ticks++
	}

	final := module.Snapshot()
	result.Score = final.HUD.Score
	result.Level = final.HUD.Level
	result.GameOver = final.GameOver
	return result, nil
}

// autopilot 朝最低（最接近玩家）的敌机水平中心移动
func autopilot(snap modules.Snapshot) (left, right bool) {
	if len(snap.Enemies) == 0 {
		return false, false
	}
	target := snap.Enemies[0]
	for _, e := range snap.Enemies[1:] {
		if e.Y > target.Y {
			target = e
		}
	}
	playerCenter := snap.Player.X + snap.Player.Width/2
	targetCenter := target.X + target.Width/2
	const deadZone = 4.0
	switch {
	case targetCenter < playerCenter-deadZone:
		return true, false
	case targetCenter > playerCenter+deadZone:
		return false, true
	}
	return false, false
}
