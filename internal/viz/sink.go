package viz

// Visualizer is the sink of a visualized run: it counts into the
// renderer's statistics and redraws on every mutation.
type Visualizer struct {
	r *Renderer
}

func NewVisualizer(r *Renderer) *Visualizer {
	return &Visualizer{r: r}
}

func (v *Visualizer) Compare() { v.r.stats.Comparisons++ }
func (v *Visualizer) Swap()    { v.r.stats.Swaps++ }
func (v *Visualizer) Write()   { v.r.stats.Writes++ }

func (v *Visualizer) Mutate(data, touched []int) {
	v.r.RenderStep(data, touched)
}
