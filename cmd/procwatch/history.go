package main

import (
	"errors"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/scjalliance/procwatch/history"
)

func printHistory(conf Config, n int) error {
	journal, err := history.Open(conf.HistoryPath())
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return errors.New("the history is locked by a running watcher; exit it to read the history")
		}
		return err
	}
	defer journal.Close()

	entries, err := journal.Recent(n)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No transitions have been recorded.\n")
		return nil
	}
	for _, entry := range entries {
		fmt.Println(entry)
	}
	return nil
}
