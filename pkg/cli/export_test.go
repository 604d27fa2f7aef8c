package cli

var WriteReportForTest = writeReport
