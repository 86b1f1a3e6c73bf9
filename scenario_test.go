package chainmap

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestChainedMap_SmallGeometryScenario(t *testing.T) {
	convey.Convey("a map with threshold 2, 2 chains and chain capacity 2", t, func() {
		cm, err := NewWithParams[int, string](2, 2, 2)
		convey.So(err, convey.ShouldBeNil)

		values := map[int]string{1: "a", 2: "b", 3: "c", 4: "d", 5: "e"}
		for k := 1; k <= 5; k++ {
			cm.Put(k, values[k])
		}

		convey.Convey("keeps all five keys retrievable", func() {
			convey.So(cm.Size(), convey.ShouldEqual, 5)
			for k, want := range values {
				v, ok := cm.Get(k)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(v, convey.ShouldEqual, want)
			}
		})

		convey.Convey("has doubled its chain array", func() {
			stats := cm.Stats()
			convey.So(stats.Chains, convey.ShouldBeGreaterThanOrEqualTo, 4)
			convey.So(stats.Resizes, convey.ShouldBeGreaterThanOrEqualTo, 1)
		})

		convey.Convey("iterates exactly five unique entries", func() {
			seen := make(map[int]string)
			it := cm.Iterator()
			for it.HasNext() {
				e, err := it.Next()
				convey.So(err, convey.ShouldBeNil)
				_, dup := seen[e.Key()]
				convey.So(dup, convey.ShouldBeFalse)
				seen[e.Key()] = e.Value()
			}
			convey.So(seen, convey.ShouldResemble, values)

			_, err := it.Next()
			convey.So(err, convey.ShouldEqual, ErrNoSuchElement)
		})

		convey.Convey("after clear behaves like a fresh map", func() {
			cm.Clear()
			convey.So(cm.Size(), convey.ShouldEqual, 0)
			convey.So(cm.Stats().Chains, convey.ShouldEqual, 2)

			_, ok := cm.Get(1)
			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}
