package main

import "github.com/ManuelMeraz-PersonalProjects/Tracker/cmd/tracker"

func main() {
	tracker.Execute()
}
