package main

import (
	"sync"

	"singleton"
)

// race releases n goroutines at once, each asking for the instance, and
// collects the references they got back.
func race(n int) []*singleton.Singleton {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		pool  = make(chan *singleton.Singleton, n)
	)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			<-start
			pool <- singleton.GetInstance()
		}()
	}
	close(start)
	wg.Wait()
	close(pool)

	refs := make([]*singleton.Singleton, 0, n)
	for ref := range pool {
		refs = append(refs, ref)
	}
	return refs
}
