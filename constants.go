package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeLeader
	ModeResize
	ModeHelp
	ModeMenu
)

const (
	minNodeWidth  = 3
	minNodeHeight = 1
)

const (
	defaultExportWidth = 79
	defaultTitle       = "Untitled Diagram"
)

const (
	menuWidth       = 21
	leaderMenuWidth = 30
	helpMenuWidth   = 50
)
