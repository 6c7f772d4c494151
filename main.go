package main

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/aggregate-map/aggregate"
	"github.com/tuannh982/aggregate-map/collections"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	pets := []aggregate.Pair[string, string]{
		aggregate.PairOf("dog", "Terry"),
		aggregate.PairOf("dog", "Zamboni"),
		aggregate.PairOf("cat", "Jonathan"),
		aggregate.PairOf("dog", "Priscilla"),
		aggregate.PairOf("cat", "Jonathan"),
	}

	bySpecies := aggregate.CollectPairs(
		aggregate.NewHashMap[string, string](collections.NewVector[string]),
		pets...,
	)
	for species, names := range bySpecies.Inner().All() {
		log.WithFields(log.Fields{
			"species": species,
			"names":   names.Entries(),
		}).Info("aggregated")
	}

	sorted := aggregate.CollectPairs(
		aggregate.NewTreeMap[string, string](collections.NewSet[string]),
		pets...,
	)
	for species, names := range sorted.Inner().All() {
		log.WithFields(log.Fields{
			"species": species,
			"names":   names.Entries(),
		}).Info("deduplicated, in species order")
	}

	data, err := json.Marshal(bySpecies)
	if err != nil {
		log.WithError(err).Fatal("encode failed")
	}
	log.WithField("json", string(data)).Info("encoded")

	households := []aggregate.Pair[string, aggregate.Pair[string, string]]{
		aggregate.PairOf("pet", aggregate.PairOf("dog", "Terry")),
		aggregate.PairOf("pet", aggregate.PairOf("dog", "Priscilla")),
		aggregate.PairOf("stray", aggregate.PairOf("cat", "Jennifer")),
		aggregate.PairOf("pet", aggregate.PairOf("cat", "Absalom")),
	}
	byStatus := aggregate.CollectPairs(
		aggregate.NewHashMap[string, aggregate.Pair[string, string]](
			func() *aggregate.AggregateMap[string, string, *aggregate.HashMap[string, string, *collections.Vector[string]]] {
				return aggregate.Wrap[string, string](aggregate.NewHashMap[string, string](collections.NewVector[string]))
			},
		),
		households...,
	)
	for status, group := range byStatus.Inner().All() {
		for species, names := range group.Inner().All() {
			log.WithFields(log.Fields{
				"status":  status,
				"species": species,
				"names":   names.Entries(),
			}).Info("nested aggregation")
		}
	}
}
