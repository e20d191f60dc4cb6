package util

import (
	"fmt"
	"zarena/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomName returns a seat nickname by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}

// SeatNames returns a distinct nickname for each seat
// Names repeat only when there are more seats than combinations.
func SeatNames(gen rng.Generator, seats int) []string {
	names := make([]string, seats)
	seen := make(map[string]bool, seats)
	for i := range names {
		name := GetRandomName(gen)
		for attempts := 0; seen[name] && attempts < 100; attempts++ {
			name = GetRandomName(gen)
		}

		seen[name] = true
		names[i] = name
	}

	return names
}
