package downloader

// RatioTracker turns the byte callbacks of a download into a completion ratio.
// Wire SetTotal to Config.OnContentLength and Update to Config.OnProgress.
type RatioTracker struct {
	total   int64
	onRatio func(ratio float64)
}

// NewRatioTracker returns a tracker that reports to onRatio
func NewRatioTracker(onRatio func(ratio float64)) *RatioTracker {
	return &RatioTracker{onRatio: onRatio}
}

// SetTotal records the announced content length
func (r *RatioTracker) SetTotal(total int64) {
	r.total = total
}

// Total returns the announced content length, zero if unknown
func (r *RatioTracker) Total() int64 {
	return r.total
}

// Update reports completed/total. Nothing is reported while no byte has arrived
// or when the total is unknown.
func (r *RatioTracker) Update(completed int64) {
	if completed == 0 || r.total <= 0 || r.onRatio == nil {
		return
	}
	r.onRatio(float64(completed) / float64(r.total))
}

// Apply wires the tracker into config
func (r *RatioTracker) Apply(config *Config) {
	config.OnContentLength = r.SetTotal
	config.OnProgress = r.Update
}
