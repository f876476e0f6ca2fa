package pipeline

// Recorder is a Renderer that keeps the last value of each stage.
type Recorder struct {
	Acquisition *Acquisition
	Result      *Analysis
	Translated  *Translation
	Notices     []string
}

// Acquired keeps acq.
func (r *Recorder) Acquired(acq Acquisition) { r.Acquisition = &acq }

// Analysis keeps a.
func (r *Recorder) Analysis(a Analysis) { r.Result = &a }

// Translation keeps t.
func (r *Recorder) Translation(t Translation) { r.Translated = &t }

// Notice appends msg.
func (r *Recorder) Notice(msg string) { r.Notices = append(r.Notices, msg) }
