// Package usagestats decodes the XML files written by Android's usage-stats
// service under /data/system/usagestats/<user>/daily/.
//
// Each file is named after the millisecond timestamp its records are relative
// to. Two kinds of elements are read, wherever they appear in the tree:
//
//	<package package="com.whatsapp" lastTimeActive="41866" lastEvent="2"/>
//	<event package="com.whatsapp" time="41866" type="1"/>
//
// Usage:
//
//	doc, err := usagestats.Open("1438905600000")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, pkg := range doc.VisiblePackages() {
//		fmt.Println(pkg.Package, pkg.LastEvent.Label())
//	}
package usagestats
