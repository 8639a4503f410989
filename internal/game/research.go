package game

import "time"

// ResearchTask is one in-flight category research.
type ResearchTask struct {
	Category DNACategory   `json:"category"`
	Elapsed  time.Duration `json:"elapsed"`
	Total    time.Duration `json:"total"`
}

func (t ResearchTask) Progress() float64 {
	if t.Total <= 0 {
		return 1
	}
	return clampFloat(float64(t.Elapsed)/float64(t.Total), 0, 1)
}

// ResearchLab runs at most one timed research per category. Completion draws
// a weighted random locked item of the category; the unlock itself is the
// Lab's job.
type ResearchLab struct {
	cfg    Balance
	active map[DNACategory]*ResearchTask
}

func NewResearchLab(cfg Balance) *ResearchLab {
	return &ResearchLab{cfg: cfg, active: make(map[DNACategory]*ResearchTask)}
}

// Start admits a research task. Rejected when the category is already being
// researched; payment is the caller's concern.
func (l *ResearchLab) Start(category DNACategory, speedMultiplier float64) bool {
	if _, busy := l.active[category]; busy {
		return false
	}
	if speedMultiplier <= 0 {
		speedMultiplier = 1
	}
	l.active[category] = &ResearchTask{
		Category: category,
		Total:    time.Duration(float64(l.cfg.researchTime()) / speedMultiplier),
	}
	return true
}

// Tick advances all tasks and returns the categories that finished.
func (l *ResearchLab) Tick(dt time.Duration) []DNACategory {
	var done []DNACategory
	for category, task := range l.active {
		task.Elapsed += dt
		if task.Elapsed >= task.Total {
			done = append(done, category)
			delete(l.active, category)
		}
	}
	return done
}

func (l *ResearchLab) IsResearching(category DNACategory) bool {
	_, busy := l.active[category]
	return busy
}

func (l *ResearchLab) Progress(category DNACategory) float64 {
	task, ok := l.active[category]
	if !ok {
		return 0
	}
	return task.Progress()
}

// Active returns copies of the in-flight tasks.
func (l *ResearchLab) Active() []ResearchTask {
	out := make([]ResearchTask, 0, len(l.active))
	for _, task := range l.active {
		out = append(out, *task)
	}
	return out
}

func (l *ResearchLab) reset() {
	l.active = make(map[DNACategory]*ResearchTask)
}
