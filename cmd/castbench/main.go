package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"gridcaster/internal/core"
	"gridcaster/internal/level"
	"gridcaster/internal/motion"
	"gridcaster/internal/raycast"
	"gridcaster/pkg/rng"
)

type poseJob struct {
	id   int
	pose motion.Pose
}

type poseResult struct {
	id         int
	pose       motion.Pose
	sequential time.Duration
	parallel   time.Duration
	horizon    int
	mismatch   bool
}

func main() {
	name := flag.String("level", "maze", "level name or .map path")
	width := flag.Int("width", 960, "columns per frame")
	height := flag.Int("height", 540, "rows per frame")
	poses := flag.Int("poses", 256, "random poses to cast from")
	frames := flag.Int("frames", 8, "frames cast per pose")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	castWorkers := flag.Int("cast-workers", 4, "goroutines per parallel frame")
	seed := flag.Int64("seed", 1337, "seed for level and pose generation")
	flag.Parse()
	if err := checkFlags(*width, *height, *poses, *frames, *workers); err != nil {
		log.Fatal(err)
	}

	grid, err := level.Load(*name, map[string]string{"seed": fmt.Sprint(*seed)})
	if err != nil {
		log.Fatal(err)
	}
	jobsList := randomPoses(grid, *poses, *seed)
	if len(jobsList) == 0 {
		log.Fatalf("level %s has no vacant cells", *name)
	}

	size := grid.Size()
	fmt.Printf("Casting %d poses on %s (%dx%d cells), %dx%d frames, %d workers, %d cast goroutines\n",
		len(jobsList), *name, size.W, size.H, *width, *height, *workers, *castWorkers)

	jobs := make(chan poseJob)
	results := make(chan poseResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- runPose(grid, job, *width, *height, *frames, *castWorkers)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, job := range jobsList {
			jobs <- job
		}
		close(jobs)
	}()

	start := time.Now()
	var all []poseResult
	var seqTotal, parTotal time.Duration
	mismatches := 0
	for res := range results {
		all = append(all, res)
		seqTotal += res.sequential
		parTotal += res.parallel
		if res.mismatch {
			mismatches++
			fmt.Printf("Mismatch at pose %d pos=(%.3f,%.3f) dir=(%.3f,%.3f)\n",
				res.id, res.pose.Pos.X, res.pose.Pos.Y, res.pose.Dir.X, res.pose.Dir.Y)
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].sequential > all[j].sequential })

	totalFrames := len(all) * *frames
	fmt.Printf("\nSlowest poses (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) pose=%d pos=(%.2f,%.2f) seq=%s par=%s horizon=%d\n",
			i+1, res.id, res.pose.Pos.X, res.pose.Pos.Y,
			perFrame(res.sequential, *frames), perFrame(res.parallel, *frames), res.horizon)
	}
	fmt.Printf("\nSequential: %s/frame (%.0f fps)\n", perFrame(seqTotal, totalFrames), fps(seqTotal, totalFrames))
	fmt.Printf("Parallel:   %s/frame (%.0f fps)\n", perFrame(parTotal, totalFrames), fps(parTotal, totalFrames))
	if mismatches > 0 {
		log.Fatalf("%d poses produced different parallel output", mismatches)
	}
}

// checkFlags rejects settings that would leave the pool with nothing to run
// or nothing to report.
func checkFlags(width, height, poses, frames, workers int) error {
	var errs []error
	if width <= 0 || height <= 0 {
		errs = append(errs, errors.New("width and height must be positive"))
	}
	if poses <= 0 {
		errs = append(errs, errors.New("poses must be positive"))
	}
	if frames <= 0 {
		errs = append(errs, errors.New("frames must be positive"))
	}
	if workers <= 0 {
		errs = append(errs, errors.New("workers must be positive"))
	}
	return errors.Join(errs...)
}

func runPose(grid *core.Grid, job poseJob, w, h, frames, castWorkers int) poseResult {
	res := poseResult{id: job.id, pose: job.pose}

	var seq []raycast.ColumnHit
	t0 := time.Now()
	for i := 0; i < frames; i++ {
		seq = raycast.CastFrameInto(seq, w, h, job.pose, grid)
	}
	res.sequential = time.Since(t0)

	var par []raycast.ColumnHit
	t0 = time.Now()
	for i := 0; i < frames; i++ {
		hits, err := raycast.CastFrameParallel(context.Background(), w, h, job.pose, grid, castWorkers)
		if err != nil {
			log.Fatalf("pose %d: %v", job.id, err)
		}
		par = hits
	}
	res.parallel = time.Since(t0)

	res.mismatch = !slices.Equal(seq, par)
	for _, hit := range seq {
		if hit.Wall == core.OutOfBounds {
			res.horizon++
		}
	}
	return res
}

// randomPoses scatters poses over vacant cell centres with random headings.
func randomPoses(grid *core.Grid, n int, seed int64) []poseJob {
	size := grid.Size()
	var vacant []core.Cell
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !grid.IsSolid(x, y) {
				vacant = append(vacant, core.Cell{X: x, Y: y})
			}
		}
	}
	if len(vacant) == 0 {
		return nil
	}
	r := rng.New(seed)
	out := make([]poseJob, n)
	for i := range out {
		c := vacant[r.IntN(len(vacant))]
		pose := motion.NewPose(float64(c.X)+0.5, float64(c.Y)+0.5)
		pose.Rotate(r.Float64() * 2 * math.Pi)
		out[i] = poseJob{id: i, pose: pose}
	}
	return out
}

func perFrame(d time.Duration, frames int) time.Duration {
	if frames == 0 {
		return 0
	}
	return (d / time.Duration(frames)).Round(time.Microsecond)
}

func fps(d time.Duration, frames int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(frames) / d.Seconds()
}
