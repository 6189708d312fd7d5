package overlay

import "time"

// About reports server identity and uptime. The simplest module; useful as
// a connectivity check from the console.
type About struct {
	name    string
	build   string
	started time.Time
	uptime  time.Duration
}

func NewAbout(name, build string, started time.Time) *About {
	return &About{name: name, build: build, started: started}
}

func (a *About) ID() string    { return "about" }
func (a *About) Title() string { return "About" }

func (a *About) Description() string {
	return a.name + " " + a.build + ", up " + a.uptime.Truncate(time.Second).String()
}

func (a *About) Update(dt time.Duration) {
	a.uptime = time.Since(a.started)
}
