package component

type BoardTag struct{}

var BoardTagComponent = NewComponent[BoardTag]()

type SessionTag struct{}

var SessionTagComponent = NewComponent[SessionTag]()
