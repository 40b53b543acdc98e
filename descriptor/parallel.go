/*
 * parallel.go, part of automl-autoplex.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package descriptor

import (
	"runtime"
	"sync"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Map computes one descriptor vector per configuration, fanning the work
// out over a fixed-size pool of workers. Results come back in input order
// regardless of completion order; workers share no mutable state besides
// the pre-sized result slice, each writing only its own index. workers <= 0
// means one worker per CPU. The first error encountered aborts the call.
func Map(confs []*autoplex.Conf, comp Computer, workers int) ([][]float64, error) {
	if comp == nil {
		return nil, autoplex.NewError("Map", "nil descriptor computer")
	}
	if len(confs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(confs) {
		workers = len(confs)
	}
	out := make([][]float64, len(confs))
	errs := make([]error, len(confs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = comp.Vector(confs[i])
			}
		}()
	}
	for i := range confs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, errDecorate(err, "Map")
		}
		if len(out[i]) != len(out[0]) {
			return nil, autoplex.NewError("Map", "descriptor length mismatch at configuration %d", i)
		}
	}
	return out, nil
}
