package parser

import (
	"io/ioutil"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

// progress tracks how far through an input table the windower has read
type progress struct {
	p    *mpb.Progress
	bar  *mpb.Bar
	last int64
}

// newProgress creates a progress bar over total bytes. A non-positive
// total (compressed inputs) disables the bar.
func newProgress(name string, total int64, show bool) *progress {
	if total <= 0 {
		return &progress{}
	}

	options := []mpb.ProgressOption{mpb.WithWidth(20)}
	if !show {
		options = append(options, mpb.WithOutput(ioutil.Discard))
	}
	p := mpb.New(options...)

	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("\t[-] "+name+":", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersKibiByte(" % .1f / % .1f ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return &progress{p: p, bar: bar}
}

// update moves the bar to offset bytes
func (pr *progress) update(offset int64) {
	if pr.bar == nil || offset <= pr.last {
		return
	}
	pr.bar.IncrBy(int(offset - pr.last))
	pr.last = offset
}

// done completes the bar whether or not the table was fully read and
// waits for it to render
func (pr *progress) done() {
	if pr.bar == nil {
		return
	}
	pr.bar.SetTotal(pr.last, true)
	pr.p.Wait()
}
