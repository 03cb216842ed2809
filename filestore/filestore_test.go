package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite

	dir   string
	store *Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = New(s.dir)
}

func (s *StoreTestSuite) TestWriteThenRead() {
	data := []byte("report contents\r\nwith raw bytes \x00\x01")

	s.Require().NoError(s.store.Write("report.txt", data))

	got, err := s.store.Read("report.txt")
	s.Require().NoError(err)
	s.Equal(data, got)
}

func (s *StoreTestSuite) TestWriteOverwrites() {
	s.Require().NoError(s.store.Write("report.txt", []byte("first")))
	s.Require().NoError(s.store.Write("report.txt", []byte("second")))

	got, err := s.store.Read("report.txt")
	s.Require().NoError(err)
	s.Equal([]byte("second"), got)
}

func (s *StoreTestSuite) TestReadMissingFile() {
	_, err := s.store.Read("doesnotexist")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestRejectedNames() {
	testcases := []struct {
		desc string
		name string
	}{
		{desc: "empty", name: ""},
		{desc: "dot", name: "."},
		{desc: "dot dot", name: ".."},
		{desc: "nested path", name: "a/b"},
		{desc: "backslash path", name: `a\b`},
		{desc: "traversal", name: "../escape"},
		{desc: "absolute path", name: "/etc/passwd"},
	}
	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			_, err := s.store.Read(tc.name)
			s.ErrorIs(err, ErrInvalidName)

			err = s.store.Write(tc.name, []byte("x"))
			s.ErrorIs(err, ErrInvalidName)
		})
	}

	// Rejection happens before any filesystem access.
	_, err := os.Stat(filepath.Join(filepath.Dir(s.dir), "escape"))
	s.True(os.IsNotExist(err))
}

func (s *StoreTestSuite) TestDotsInsideNamesAreFine() {
	s.Require().NoError(s.store.Write("report.v2.txt", []byte("ok")))
	s.Require().NoError(s.store.Write("..hidden", []byte("ok")))

	got, err := s.store.Read("..hidden")
	s.Require().NoError(err)
	s.Equal([]byte("ok"), got)
}
