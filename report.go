package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.Config{
	OnlyTaggedField: true,
	CaseSensitive:   true,
}.Froze()

type Report struct {
	Vec  VecReport
	Arc  ArcReport
	Ring RingReport
}

func (r *Report) OK() bool {
	return r.Vec.OK && r.Arc.OK && r.Ring.OK
}

func (r *Report) Write(w io.Writer) error {
	stream := jsonConfig.BorrowStream(w)
	defer jsonConfig.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("ok")
	stream.WriteBool(r.OK())
	stream.WriteMore()
	stream.WriteObjectField("vec")
	stream.WriteVal(r.Vec)
	stream.WriteMore()
	stream.WriteObjectField("arc")
	stream.WriteVal(r.Arc)
	stream.WriteMore()
	stream.WriteObjectField("ring")
	stream.WriteVal(r.Ring)
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")
	return stream.Flush()
}
