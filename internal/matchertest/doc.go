// Package matchertest holds matchers generated by matchgen and checked in,
// so their behaviour can be tested by running them.
//
// Every *_gen.go file is produced by the table in fixtures_test.go. After
// changing a generator, refresh them with:
//
//	go generate ./internal/matchertest
package matchertest

//go:generate go test -run TestFixtures_UpToDate -update .
