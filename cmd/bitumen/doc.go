// Bitumen packs a directory subtree into a flat sequential archive and
// lists the entries of an existing archive.
//
// Usage:
//
//	bitumen pack <dir> <archive>
//	bitumen list <archive>
//
// Exit codes:
//
//	0  success; for list, the archive ended cleanly
//	1  archive corrupt or truncated (entries decoded so far are printed)
//	2  usage or I/O error
package main
