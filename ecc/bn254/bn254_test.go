package bn254

import (
	"math/big"
	"sync"
	"testing"
)

func TestBN254Singleton(t *testing.T) {
	curve := BN254()
	if !Initialized() {
		t.Fatal("Initialized should report true after BN254()")
	}

	// concurrent callers must all observe the same instance
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if BN254() != curve {
				t.Error("BN254() returned a different instance")
			}
		}()
	}
	wg.Wait()
}

func TestLoopCounter(t *testing.T) {
	curve := BN254()

	// the loop counter is the NAF of 6t+2; reconstruct the integer
	value := new(big.Int)
	powTwo := big.NewInt(1)
	two := big.NewInt(2)
	for i := 0; i < len(curve.loopCounter); i++ {
		switch curve.loopCounter[i] {
		case 1:
			value.Add(value, powTwo)
		case -1:
			value.Sub(value, powTwo)
		case 0:
		default:
			t.Fatalf("loop counter digit out of range at %d", i)
		}
		powTwo.Mul(powTwo, two)
	}

	want := new(big.Int).SetUint64(tAbsVal)
	want.Mul(want, big.NewInt(6)).Add(want, big.NewInt(2))
	if value.Cmp(want) != 0 {
		t.Fatalf("loop counter does not encode 6t+2: got %s want %s", value, want)
	}
}
