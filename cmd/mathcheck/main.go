package main

import (
	"fmt"
	"math"
	"os"

	"rotlab/internal/mathutil"
)

const tolerance = 1e-6

type check struct {
	name string
	run  func() (got string, ok bool)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func nearVec(a, b mathutil.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func scalar(want float32, f func() float32) func() (string, bool) {
	return func() (string, bool) {
		got := f()
		return fmt.Sprintf("%.7f (want %.7f)", got, want), near(got, want)
	}
}

func vector(want mathutil.Vec3, f func() mathutil.Vec3) func() (string, bool) {
	return func() (string, bool) {
		got := f()
		return fmt.Sprintf("%v (want %v)", got, want), nearVec(got, want)
	}
}

func checks() []check {
	p := mathutil.NewVec3(2, -2, -5)
	list := []check{
		{"length (0,2,-5)", scalar(5.3851648, func() float32 {
			return mathutil.NewVec3(0, 2, -5).Len()
		})},
		{"lengthSquared (-2,-2,-5)", scalar(33, func() float32 {
			return mathutil.NewVec3(-2, -2, -5).LenSquared()
		})},
		{"RotZ 23.21 (2,-2,-5)", vector(mathutil.NewVec3(2.6263378, -1.0499284, -5), func() mathutil.Vec3 {
			return mathutil.RotZ(23.21).MulVec3(p)
		})},
		{"RotZ 5 (2,-2,-5)", vector(mathutil.NewVec3(2.1667008, -1.8180779, -5), func() mathutil.Vec3 {
			return mathutil.RotZ(5).MulVec3(p)
		})},
		{"normalize length", scalar(1, func() float32 {
			v := mathutil.NewVec3(0, 2, -5)
			v.Normalize()
			return v.Len()
		})},
	}
	for _, deg := range []float32{5, 23.21} {
		for _, a := range []mathutil.Axis{mathutil.AxisX, mathutil.AxisY, mathutil.AxisZ} {
			a, deg := a, deg
			list = append(list, check{
				name: fmt.Sprintf("quaternion agrees with matrix, %s %g", a, deg),
				run: func() (string, bool) {
					got, err := mathutil.CheckAgreement(a, p, deg, tolerance)
					if err != nil {
						return err.Error(), false
					}
					return got.String(), true
				},
			})
		}
	}
	return list
}

func main() {
	failed := 0
	for _, c := range checks() {
		got, ok := c.run()
		status := "PASS"
		if !ok {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%s  %-42s %s\n", status, c.name, got)
	}
	if failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
}
