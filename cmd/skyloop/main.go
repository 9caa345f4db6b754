// Command skyloop runs round-trip itinerary searches against a graph file
// and serves result files over HTTP.
package main

func main() {
	Execute()
}
